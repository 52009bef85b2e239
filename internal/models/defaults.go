package models

// Seed data materialized on first read when the backing collections are
// empty.

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Name:     "Capim das Pampas",
		Email:    "capimdaspampas@gmail.com",
		Phone:    "+351 934 305 372",
		WhatsApp: "+351 934 305 372",
		Team: []TeamMember{
			{ID: "1", Name: "Maria Silva"},
			{ID: "2", Name: "João Santos"},
			{ID: "3", Name: "Ana Costa"},
		},
	}
}

func defaultWeek() OpeningHours {
	weekday := DaySchedule{Open: "08:00", Close: "18:00"}
	return OpeningHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  DaySchedule{Open: "08:00", Close: "16:00"},
		Sunday:    DaySchedule{Open: "10:00", Close: "16:00", Closed: true},
	}
}

func DefaultAddress() Address {
	return Address{
		Name:         "Loja Principal",
		Address:      "Rua das Flores, 123 - 1000-001 Lisboa, Portugal",
		Coordinates:  []float64{38.7223, -9.1393},
		OpeningHours: defaultWeek(),
		Active:       true,
	}
}

func DefaultProducts() []Product {
	return []Product{
		{
			Name:        "Ramalhete de Rosas Vermelhas",
			Description: "Ramalhete elegante com 12 rosas vermelhas, perfeito para ocasiões especiais.",
			Price:       Priced(25.90),
			Category:    CategoryFlowers,
			Images:      []Image{},
			Featured:    true,
			InStock:     true,
			Tags:        []string{"rosas", "vermelhas", "ramalhete"},
			Specifications: Specifications{
				Dimensions: "30x20 cm",
				Material:   "Flores naturais",
				Weight:     "500g",
				Care:       "Manter em água fresca",
			},
		},
		{
			Name:        "Vaso de Cerâmica Artesanal",
			Description: "Vaso feito à mão com design único, ideal para plantas ou decoração.",
			Price:       Priced(15.00),
			Category:    CategoryCeramics,
			Images:      []Image{},
			Featured:    true,
			InStock:     true,
			Tags:        []string{"vaso", "cerâmica", "artesanal"},
			Specifications: Specifications{
				Dimensions: "15x15 cm",
				Material:   "Cerâmica",
				Weight:     "800g",
				Care:       "Lavar com água morna",
			},
		},
		{
			Name:        "Arranjo de Flores do Campo",
			Description: "Arranjo natural com flores do campo, cores vibrantes e cheiro delicioso.",
			Price:       Priced(18.50),
			Category:    CategoryFlowers,
			Images:      []Image{},
			Featured:    false,
			InStock:     true,
			Tags:        []string{"campo", "natural", "colorido"},
			Specifications: Specifications{
				Dimensions: "25x18 cm",
				Material:   "Flores naturais",
				Weight:     "400g",
				Care:       "Manter em água fresca",
			},
		},
	}
}
