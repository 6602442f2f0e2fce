package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Bateyjosue/marketplace/internal/models"
	"github.com/Bateyjosue/marketplace/internal/repositories"
)

// defaultLocation is stamped on submissions that omit a location.
const defaultLocation = "Palo Alto, CA"

// ListingService handles business logic related to listings, including
// the submission workflow.
type ListingService struct {
	repo     repositories.ListingRepository
	validate *validator.Validate
}

// NewListingService creates a new ListingService.
func NewListingService(repo repositories.ListingRepository) *ListingService {
	return &ListingService{
		repo:     repo,
		validate: newValidator(),
	}
}

// GetAllListings retrieves all listings, newest first.
func (s *ListingService) GetAllListings() ([]models.Listing, error) {
	return s.repo.GetAll()
}

// GetListingByID retrieves a single listing by its ID.
func (s *ListingService) GetListingByID(id string) (*models.Listing, error) {
	return s.repo.GetByID(id)
}

// SubmitListing runs the submission workflow: validate the input, scan
// the current listing set for a duplicate, require an ingested image,
// then persist with defaults applied.
//
// A (nil, nil) return means the flow halted silently (a duplicate was
// found, or no image was supplied) and nothing was created. That is
// deliberately indistinguishable from success to the caller's user,
// unlike a ValidationError which carries field messages.
func (s *ListingService) SubmitListing(sub *models.ListingSubmission) (*models.Listing, error) {
	// Validate against trimmed title/email so whitespace-only input is
	// rejected; the stored row keeps the values as typed.
	candidate := *sub
	candidate.Title = strings.TrimSpace(sub.Title)
	candidate.Email = strings.TrimSpace(sub.Email)
	if err := s.validate.Struct(&candidate); err != nil {
		return nil, newValidationError(err)
	}

	dup, err := s.hasDuplicate(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for duplicate listings: %w", err)
	}
	if dup {
		return nil, nil
	}

	if strings.TrimSpace(sub.ImageURL) == "" {
		return nil, nil
	}

	listing := &models.Listing{
		Title:       sub.Title,
		Description: sub.Description,
		Price:       *sub.Price,
		Email:       sub.Email,
		Category:    sub.Category,
		Condition:   sub.Condition,
		Location:    sub.Location,
		ImageURL:    sub.ImageURL,
	}
	if listing.Category == "" {
		listing.Category = models.DefaultCategory
	}
	if strings.TrimSpace(listing.Location) == "" {
		listing.Location = defaultLocation
	}

	if err := s.repo.Create(listing); err != nil {
		return nil, fmt.Errorf("failed to create listing in repository: %w", err)
	}
	return listing, nil
}

// dedupTuple is the normalized field set compared to suppress duplicate
// listing creation.
type dedupTuple struct {
	title       string
	description string
	price       float64
	category    string
	condition   string
	email       string
}

func listingTuple(title, description string, price float64, category, condition, email string) dedupTuple {
	if category == "" {
		category = models.DefaultCategory
	}
	return dedupTuple{
		title:       strings.ToLower(strings.TrimSpace(title)),
		description: strings.ToLower(strings.TrimSpace(description)),
		price:       price,
		category:    category,
		condition:   condition,
		email:       strings.ToLower(strings.TrimSpace(email)),
	}
}

// hasDuplicate fetches the entire current listing set and scans it
// linearly for a record matching the candidate's normalized tuple. The
// check is best effort: two concurrent identical submissions can both
// pass it and both succeed.
func (s *ListingService) hasDuplicate(sub *models.ListingSubmission) (bool, error) {
	existing, err := s.repo.GetAll()
	if err != nil {
		return false, err
	}

	want := listingTuple(sub.Title, sub.Description, *sub.Price, sub.Category, sub.Condition, sub.Email)
	for _, l := range existing {
		if listingTuple(l.Title, l.Description, l.Price, l.Category, l.Condition, l.Email) == want {
			return true, nil
		}
	}
	return false, nil
}
