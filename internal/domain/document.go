package domain

// Document is the entire persisted state of the application: one JSON file
// holding every collection. The store reads it whole and writes it whole;
// there is no partial update at the persistence layer.
//
// Content carries free-form marketing copy edited outside this API. It is
// kept here so existing db.json files round-trip losslessly.
type Document struct {
	Users      []User          `json:"users"`
	Packages   []Package       `json:"packages"`
	Trips      []Trip          `json:"trips"`
	Bookings   []Booking       `json:"bookings"`
	Checklists []ChecklistItem `json:"checklists"`
	Content    map[string]any  `json:"content,omitempty"`
}

// The finder methods below return pointers into the Document's slices so
// that callers inside a store Update can mutate records in place.
// They return nil when no record matches.

// UserByID finds a user by id.
func (d *Document) UserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// UserByUsername finds a user by exact username.
func (d *Document) UserByUsername(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// UserByEmail finds a user by exact email. Users with no email never match.
func (d *Document) UserByEmail(email string) *User {
	if email == "" {
		return nil
	}
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

// TripByID finds a trip by id.
func (d *Document) TripByID(id string) *Trip {
	for i := range d.Trips {
		if d.Trips[i].ID == id {
			return &d.Trips[i]
		}
	}
	return nil
}

// PackageByID finds a package by id.
func (d *Document) PackageByID(id string) *Package {
	for i := range d.Packages {
		if d.Packages[i].ID == id {
			return &d.Packages[i]
		}
	}
	return nil
}

// BookingByID finds a booking by id.
func (d *Document) BookingByID(id string) *Booking {
	for i := range d.Bookings {
		if d.Bookings[i].ID == id {
			return &d.Bookings[i]
		}
	}
	return nil
}

// ChecklistItemByID finds a checklist item by id.
func (d *Document) ChecklistItemByID(id string) *ChecklistItem {
	for i := range d.Checklists {
		if d.Checklists[i].ID == id {
			return &d.Checklists[i]
		}
	}
	return nil
}
