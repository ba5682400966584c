package catalog

import (
	"errors"
	"regexp"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"
	"gofer/internal/pkg/guard"
)

// ErrServiceIsNotConstructed is returned when a Service instance was not
// created through the NewService or RestoreService factory methods.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service is a catalog entry customers can order: an errand category with a
// base service fee. Entries can be deactivated or flagged as beta, both of
// which remove them from the orderable catalog.
type Service struct {
	id          kernel.UUID
	name        string
	slug        string
	description string
	// basePrice is the service fee charged before pass-through costs
	basePrice kernel.Money
	isActive  bool
	isBeta    bool
	sortOrder int

	guard guard.ConstructorGuard
}

// NewService creates an active, non-beta catalog entry.
func NewService(id kernel.UUID, name, slug, description string, basePrice kernel.Money, sortOrder int) (*Service, error) {
	s := &Service{
		description: description,
		basePrice:   basePrice,
		isActive:    true,
		sortOrder:   sortOrder,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setSlug(slug),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService reconstructs a Service from persistent storage.
func RestoreService(
	id kernel.UUID,
	name, slug, description string,
	basePrice kernel.Money,
	isActive, isBeta bool,
	sortOrder int,
) (*Service, error) {
	s := &Service{
		description: description,
		basePrice:   basePrice,
		isActive:    isActive,
		isBeta:      isBeta,
		sortOrder:   sortOrder,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setSlug(slug),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Service instance was properly constructed.
func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

// ID returns the catalog entry's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable service name.
func (s *Service) Name() string {
	return s.name
}

// Slug returns the URL-safe identifier.
func (s *Service) Slug() string {
	return s.slug
}

// Description returns the service description.
func (s *Service) Description() string {
	return s.description
}

// BasePrice returns the service fee.
func (s *Service) BasePrice() kernel.Money {
	return s.basePrice
}

// IsActive reports whether the entry is enabled.
func (s *Service) IsActive() bool {
	return s.isActive
}

// IsBeta reports whether the entry is in limited early access.
func (s *Service) IsBeta() bool {
	return s.isBeta
}

// SortOrder returns the catalog display position.
func (s *Service) SortOrder() int {
	return s.sortOrder
}

// IsOrderable reports whether customers may place orders for this service.
// Beta entries are browsable but not yet orderable.
func (s *Service) IsOrderable() bool {
	return s.isActive && !s.isBeta
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Service) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidError("slug")
	}
	s.slug = slug
	return nil
}
