package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingIdentity covers a blank document or username. Both are
	// uniqueness keys, so a blank one is treated like a taken one.
	ErrMissingIdentity = errors.New("document and username are required")
	ErrMissingField    = errors.New("required field is empty")
)

type Customer struct {
	id           uuid.UUID
	name         string
	surname      string
	document     string
	username     string
	passwordHash string
	phone        string
	createdAt    time.Time
	updatedAt    time.Time
}

type Profile struct {
	Name     string
	Surname  string
	Document string
	Username string
	Phone    string
}

func NewCustomer(p Profile, passwordHash string) (*Customer, error) {
	p = p.trimmed()
	if p.Document == "" || p.Username == "" {
		return nil, ErrMissingIdentity
	}
	if err := requireFields(map[string]string{
		"name":     p.Name,
		"surname":  p.Surname,
		"phone":    p.Phone,
		"password": passwordHash,
	}); err != nil {
		return nil, err
	}

	return &Customer{
		id:           uuid.New(),
		name:         p.Name,
		surname:      p.Surname,
		document:     p.Document,
		username:     p.Username,
		passwordHash: passwordHash,
		phone:        p.Phone,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, p Profile, passwordHash string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:           id,
		name:         p.Name,
		surname:      p.Surname,
		document:     p.Document,
		username:     p.Username,
		passwordHash: passwordHash,
		phone:        p.Phone,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Rename changes the contact fields. Document and username are immutable.
func (c *Customer) Rename(name, surname, phone string) error {
	name, surname, phone = strings.TrimSpace(name), strings.TrimSpace(surname), strings.TrimSpace(phone)
	if err := requireFields(map[string]string{"name": name, "surname": surname, "phone": phone}); err != nil {
		return err
	}
	c.name, c.surname, c.phone = name, surname, phone
	return nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Surname() string      { return c.surname }
func (c *Customer) Document() string     { return c.document }
func (c *Customer) Username() string     { return c.username }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) Profile() Profile {
	return Profile{
		Name:     c.name,
		Surname:  c.surname,
		Document: c.document,
		Username: c.username,
		Phone:    c.phone,
	}
}

func (p Profile) trimmed() Profile {
	return Profile{
		Name:     strings.TrimSpace(p.Name),
		Surname:  strings.TrimSpace(p.Surname),
		Document: strings.TrimSpace(p.Document),
		Username: strings.TrimSpace(p.Username),
		Phone:    strings.TrimSpace(p.Phone),
	}
}

func requireFields(fields map[string]string) error {
	var missing []string
	for _, name := range []string{"name", "surname", "phone", "password"} {
		if v, ok := fields[name]; ok && v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
