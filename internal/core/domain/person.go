package domain

import (
	"fmt"
	"strings"
)

// Person is a contact tasks can be assigned to or from. Identity is the name.
type Person struct {
	Name    Name
	Phone   string
	Email   string
	Address string
}

func NewPerson(name Name, phone, email, address string) Person {
	return Person{
		Name:    name,
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
	}
}

// IsSamePerson reports whether both persons share a name.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name == other.Name
}

func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.Name.String())
	if p.Phone != "" {
		fmt.Fprintf(&b, "; Phone: %s", p.Phone)
	}
	if p.Email != "" {
		fmt.Fprintf(&b, "; Email: %s", p.Email)
	}
	if p.Address != "" {
		fmt.Fprintf(&b, "; Address: %s", p.Address)
	}
	return b.String()
}
