package client

// Hard-coded fallbacks used whenever the settings endpoint cannot be
// reached. Stale contact info is worse than default contact info, so
// these mirror the shop's real details.

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Name:     "Capim das Pampas",
		Email:    "capimdaspampas@gmail.com",
		Phone:    "+351 934 305 372",
		WhatsApp: "+351 934 305 372",
		Team: []TeamMember{
			{ID: "1", Name: "Daniela Martins"},
			{ID: "2", Name: "Rui Loureiro"},
		},
	}
}

func DefaultContactSettings() ContactSettings {
	weekday := DaySchedule{Open: "08:00", Close: "18:00"}
	return ContactSettings{
		Phone: "+351 934 305 372",
		Email: "capimdaspampas@gmail.com",
		Addresses: []Address{
			{
				ID:      "1",
				Name:    "Loja Principal",
				Address: "Florista Capim das Pampas, R. da Igreja 26",
				OpeningHours: OpeningHours{
					Monday:    weekday,
					Tuesday:   weekday,
					Wednesday: weekday,
					Thursday:  weekday,
					Friday:    weekday,
					Saturday:  DaySchedule{Open: "08:00", Close: "16:00"},
					Sunday:    DaySchedule{Open: "10:00", Close: "16:00", Closed: true},
				},
			},
		},
	}
}
