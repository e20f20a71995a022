package toolshed

// SeedTools returns the catalog every run starts from. Order is the display order.
func SeedTools() []Tool {
	return []Tool{
		{Name: "Hammer", Category: General},
		{Name: "Screwdriver", Category: General},
		{Name: "Tape Measure", Category: General},
		{Name: "Levels", Category: General},
		{Name: "Power Drill", Category: General},
		{Name: "Paint Brush", Category: Decoration},
		{Name: "Painter's Tape", Category: Decoration},
		{Name: "Hot Glue Gun", Category: Decoration, SpecialHandling: true},
		{Name: "Paint Scrapper", Category: Decoration, SpecialHandling: true},
		{Name: "Sand Paper", Category: Decoration},
		{Name: "Mop", Category: Cleaning},
		{Name: "Vacuum Cleaner", Category: Cleaning},
	}
}

// SeedWorkers returns the fixed company roster.
func SeedWorkers() []Worker {
	return []Worker{
		{ID: 121, Name: "Bereket Tendai"},
		{ID: 122, Name: "Galal Jameel"},
		{ID: 123, Name: "Fizza Zaahira"},
		{ID: 124, Name: "Ryan Smith"},
		{ID: 125, Name: "Jason Mendes"},
		{ID: 126, Name: "Ehsan Khan"},
		{ID: 127, Name: "Jakub Arian"},
		{ID: 128, Name: "Sarah Frazier"},
		{ID: 129, Name: "Francis Freeman"},
		{ID: 130, Name: "Fazlul Hoque"},
	}
}
