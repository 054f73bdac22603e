// internal/application/query/history_query.go
package query

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HistoryQuery is the buyer-facing read model for the profile screen:
// booking requests (most recent first) plus the live cart, in one
// payload. It reads Firestore directly and is tolerant of legacy
// documents the mobile client wrote (missing status/createdAt, numeric
// type drift); the write path goes through the repositories.
type HistoryQuery struct {
	FS *firestore.Client

	// collection names (override if the schema differs)
	UsersCol    string
	CartCol     string
	RequestsCol string
}

func NewHistoryQuery(fs *firestore.Client) *HistoryQuery {
	return &HistoryQuery{
		FS:          fs,
		UsersCol:    "users",
		CartCol:     "cart",
		RequestsCol: "requests",
	}
}

// HistoryItemDTO is one line of a request or the live cart.
type HistoryItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

// HistoryRequestDTO is one booking request row.
type HistoryRequestDTO struct {
	ID        string           `json:"id"`
	Items     []HistoryItemDTO `json:"items"`
	Total     float64          `json:"total"`
	Status    string           `json:"status"`
	CreatedAt *time.Time       `json:"createdAt,omitempty"`
}

// HistoryDTO is the whole profile payload.
type HistoryDTO struct {
	UID      string              `json:"uid"`
	Requests []HistoryRequestDTO `json:"requests"`
	Cart     []HistoryItemDTO    `json:"cart"`
	CartSum  float64             `json:"cartTotal"`
}

// Resolve builds the payload for uid.
func (q *HistoryQuery) Resolve(ctx context.Context, uid string) (HistoryDTO, error) {
	if q == nil || q.FS == nil {
		return HistoryDTO{}, errors.New("history_query: firestore client is nil")
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return HistoryDTO{}, errors.New("history_query: uid is required")
	}

	out := HistoryDTO{UID: uid, Requests: []HistoryRequestDTO{}, Cart: []HistoryItemDTO{}}

	userDoc := q.FS.Collection(q.UsersCol).Doc(uid)

	// requests
	reqIter := userDoc.Collection(q.RequestsCol).Documents(ctx)
	defer reqIter.Stop()
	for {
		snap, err := reqIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return HistoryDTO{}, err
		}
		out.Requests = append(out.Requests, requestDTOFromSnapshot(snap))
	}
	sortRequestsMostRecentFirst(out.Requests)

	// live cart (best-effort: a cart read failure should not hide the
	// request history)
	cartIter := userDoc.Collection(q.CartCol).Documents(ctx)
	defer cartIter.Stop()
	for {
		snap, err := cartIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				break
			}
			return out, nil
		}
		it := itemDTOFromData(snap.Ref.ID, snap.Data())
		if it.Quantity < 1 {
			continue
		}
		out.Cart = append(out.Cart, it)
		out.CartSum += it.Price * float64(it.Quantity)
	}

	return out, nil
}

func sortRequestsMostRecentFirst(rs []HistoryRequestDTO) {
	// same order contract as the repository: createdAt descending,
	// missing createdAt last, id-descending tiebreak
	sort.SliceStable(rs, func(i, j int) bool {
		return requestLess(rs[i], rs[j])
	})
}

func requestLess(a, b HistoryRequestDTO) bool {
	switch {
	case a.CreatedAt == nil && b.CreatedAt == nil:
		return a.ID > b.ID
	case a.CreatedAt == nil:
		return false
	case b.CreatedAt == nil:
		return true
	}
	if !a.CreatedAt.Equal(*b.CreatedAt) {
		return a.CreatedAt.After(*b.CreatedAt)
	}
	return a.ID > b.ID
}

func requestDTOFromSnapshot(snap *firestore.DocumentSnapshot) HistoryRequestDTO {
	dto := HistoryRequestDTO{ID: snap.Ref.ID, Status: "pending", Items: []HistoryItemDTO{}}

	raw := snap.Data()
	if raw == nil {
		return dto
	}

	dto.Total = readFloat(raw["total"])
	if s := strings.TrimSpace(readString(raw["status"])); s != "" {
		dto.Status = s
	}
	if t, ok := raw["createdAt"].(time.Time); ok && !t.IsZero() {
		tt := t.UTC()
		dto.CreatedAt = &tt
	}

	if itemsAny, ok := raw["items"].([]any); ok {
		for _, v := range itemsAny {
			m, ok := v.(map[string]any)
			if !ok {
				continue
			}
			dto.Items = append(dto.Items, itemDTOFromData(readString(m["id"]), m))
		}
	}
	return dto
}

func itemDTOFromData(id string, m map[string]any) HistoryItemDTO {
	it := HistoryItemDTO{ID: strings.TrimSpace(id)}
	if m == nil {
		return it
	}
	if it.ID == "" {
		it.ID = strings.TrimSpace(readString(m["id"]))
	}
	it.Name = strings.TrimSpace(readString(m["name"]))
	it.Price = readFloat(m["price"])
	it.Quantity = readInt(m["quantity"])
	it.Description = strings.TrimSpace(readString(m["description"]))
	return it
}

func readString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func readFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func readInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}
