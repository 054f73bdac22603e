// internal/domain/catalog/catalog.go
package catalog

// Static storefront data. Prices are in rand (R).

var services = []Service{
	{ID: "electrician", Name: "Electrician", Icon: "bolt.fill", ImageObject: "services/electrician.png"},
	{ID: "plumbing", Name: "Plumbing", Icon: "wrench.fill", ImageObject: "services/plumbing.png"},
	{ID: "roofing", Name: "Roofing", Icon: "house.fill", ImageObject: "services/roofing.png"},
	{ID: "painting", Name: "Painter", Icon: "paintbrush.fill", ImageObject: "services/painting.png"},
	{ID: "mechanic", Name: "In-House Mechanic", Icon: "car.fill", ImageObject: "services/mechanic.png"},
	{ID: "entertainment", Name: "Home Entertainment", Icon: "tv.fill", ImageObject: "services/entertainment.png"},
	{ID: "interior", Name: "Interior Design", Icon: "sofa.fill", ImageObject: "services/interior.png"},
}

var providersByService = map[string][]Provider{
	"electrician": {
		{ID: "1", Name: "Lightning Electric Co.", Rating: 4.8, Reviews: 142, ETA: "30-45 min", HourlyRate: "R75/hr"},
		{ID: "2", Name: "PowerUp Services", Rating: 4.6, Reviews: 89, ETA: "45-60 min", HourlyRate: "R65/hr"},
		{ID: "3", Name: "Bright Spark Electric", Rating: 4.9, Reviews: 203, ETA: "20-35 min", HourlyRate: "R85/hr"},
	},
	"plumbing": {
		{ID: "1", Name: "AquaFix Pro", Rating: 4.7, Reviews: 156, ETA: "25-40 min", HourlyRate: "R70/hr"},
		{ID: "2", Name: "Pipeline Masters", Rating: 4.5, Reviews: 94, ETA: "35-50 min", HourlyRate: "R60/hr"},
		{ID: "3", Name: "Flow Control Services", Rating: 4.8, Reviews: 178, ETA: "30-45 min", HourlyRate: "R75/hr"},
	},
	"roofing": {
		{ID: "1", Name: "TopShield Roofing", Rating: 4.9, Reviews: 234, ETA: "60-90 min", HourlyRate: "R95/hr"},
		{ID: "2", Name: "SkyGuard Services", Rating: 4.6, Reviews: 112, ETA: "45-75 min", HourlyRate: "R80/hr"},
		{ID: "3", Name: "Apex Roofing Co.", Rating: 4.7, Reviews: 189, ETA: "50-80 min", HourlyRate: "R90/hr"},
	},
	"painting": {
		{ID: "1", Name: "ColorCraft Painters", Rating: 4.8, Reviews: 167, ETA: "60-120 min", HourlyRate: "R45/hr"},
		{ID: "2", Name: "Brush & Roll Pro", Rating: 4.5, Reviews: 98, ETA: "90-150 min", HourlyRate: "R40/hr"},
		{ID: "3", Name: "Perfect Finish Paint", Rating: 4.9, Reviews: 223, ETA: "45-90 min", HourlyRate: "R50/hr"},
	},
	"mechanic": {
		{ID: "1", Name: "Mobile Auto Care", Rating: 4.7, Reviews: 134, ETA: "45-75 min", HourlyRate: "R85/hr"},
		{ID: "2", Name: "DriveRight Services", Rating: 4.6, Reviews: 87, ETA: "60-90 min", HourlyRate: "R75/hr"},
		{ID: "3", Name: "OnSite Auto Repair", Rating: 4.8, Reviews: 156, ETA: "30-60 min", HourlyRate: "R90/hr"},
	},
	"entertainment": {
		{ID: "1", Name: "TechSetup Pro", Rating: 4.9, Reviews: 198, ETA: "60-120 min", HourlyRate: "R100/hr"},
		{ID: "2", Name: "MediaInstall Experts", Rating: 4.7, Reviews: 143, ETA: "90-150 min", HourlyRate: "R85/hr"},
		{ID: "3", Name: "HomeTheater Plus", Rating: 4.8, Reviews: 176, ETA: "75-135 min", HourlyRate: "R95/hr"},
	},
	"interior": {
		{ID: "1", Name: "Design & Style Co.", Rating: 4.9, Reviews: 267, ETA: "120-180 min", HourlyRate: "R120/hr"},
		{ID: "2", Name: "Modern Spaces", Rating: 4.6, Reviews: 134, ETA: "90-150 min", HourlyRate: "R100/hr"},
		{ID: "3", Name: "Elite Interiors", Rating: 4.8, Reviews: 201, ETA: "105-165 min", HourlyRate: "R115/hr"},
	},
}

// Published provider menus. Providers without a menu return
// ErrProviderNotFound from MenuFor.
var menusByService = map[string]map[string]Menu{
	"electrician": {
		"1": {
			Provider: "Lightning Electric Co.",
			Items: []MenuItem{
				{ID: "1", Name: "Outlet Installation", Price: 45, Description: "Install new electrical outlet"},
				{ID: "2", Name: "Light Fixture Installation", Price: 65, Description: "Install ceiling or wall light fixtures"},
				{ID: "3", Name: "Circuit Breaker Repair", Price: 85, Description: "Diagnose and repair circuit breaker issues"},
				{ID: "4", Name: "Electrical Panel Upgrade", Price: 350, Description: "Upgrade electrical panel for modern needs"},
				{ID: "5", Name: "Wiring Inspection", Price: 120, Description: "Complete electrical wiring safety inspection"},
			},
		},
	},
	"plumbing": {
		"1": {
			Provider: "AquaFix Pro",
			Items: []MenuItem{
				{ID: "1", Name: "Leak Repair", Price: 85, Description: "Fix pipe and faucet leaks"},
				{ID: "2", Name: "Drain Cleaning", Price: 95, Description: "Clear clogged drains and pipes"},
				{ID: "3", Name: "Toilet Installation", Price: 150, Description: "Install new toilet fixture"},
				{ID: "4", Name: "Water Heater Repair", Price: 180, Description: "Diagnose and repair water heater issues"},
				{ID: "5", Name: "Pipe Replacement", Price: 250, Description: "Replace damaged or old pipes"},
			},
		},
	},
}
