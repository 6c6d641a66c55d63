package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
)

// defaultDishDescription fills the menu listing for dishes saved without one.
const defaultDishDescription = "Délicieux plat de notre maison."

// publicIDInsertAttempts bounds the retry loop on a public_id collision.
const publicIDInsertAttempts = 3

type AddDishRequest struct {
	Name        string
	Description string
	Category    string
	Price       string
	Image       []byte // optional
	ImageType   string
}

type CatalogService struct {
	repo   CatalogRepository
	images ImageStore
}

func NewCatalogService(repo CatalogRepository, images ImageStore) *CatalogService {
	return &CatalogService{repo: repo, images: images}
}

// Register creates a restaurant under a fresh public identifier. The name is
// required and globally unique (exact match). Collisions on the generated
// public id are retried under the unique index rather than pre-checked.
func (s *CatalogService) Register(name, email string) (*domain.Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}

	var err error
	for attempt := 0; attempt < publicIDInsertAttempts; attempt++ {
		rest := &domain.Restaurant{
			PublicID: GeneratePublicID(),
			Name:     name,
			Email:    email,
		}
		err = s.repo.InsertRestaurant(rest)
		if errors.Is(err, ErrDuplicatePublicID) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return rest, nil
	}
	return nil, err
}

func (s *CatalogService) GetByPublicID(publicID string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurantByPublicID(publicID)
}

// ListMenu returns the restaurant's dishes joined with their category name,
// ordered by dish id ascending.
func (s *CatalogService) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := s.repo.ListDishes(restaurantID)
	if err != nil {
		return nil, err
	}

	menu := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		description := row.Description
		if description == "" {
			description = defaultDishDescription
		}
		menu = append(menu, domain.MenuItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: description,
			Price:       FormatPrice(row.Price),
			Category:    row.Category,
			ImagePath:   row.ImagePath,
		})
	}
	return menu, nil
}

// AddDish creates the dish under its category, creating the category on
// first use. A failed image upload degrades to a dish without an image.
func (s *CatalogService) AddDish(restaurantID int, req AddDishRequest) (*domain.Dish, error) {
	for field, value := range map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"category":    req.Category,
		"price":       req.Price,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	category, err := s.repo.UpsertCategory(restaurantID, req.Category)
	if err != nil {
		return nil, err
	}

	imagePath := ""
	if len(req.Image) > 0 && s.images != nil {
		name := fmt.Sprintf("dish_%d_%d", restaurantID, time.Now().UnixNano())
		path, uploadErr := s.images.Upload(name, req.Image, req.ImageType)
		if uploadErr != nil {
			log.Printf("[catalog] image upload failed, saving dish without image: %v", uploadErr)
		} else {
			imagePath = path
		}
	}

	dish := &domain.Dish{
		RestaurantID: restaurantID,
		CategoryID:   category.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        ExtractPrice(req.Price),
		ImagePath:    imagePath,
	}
	if err := s.repo.InsertDish(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// DeleteDish removes a dish by id. The delete is not scoped to a calling
// restaurant, matching the existing contract of the endpoint.
func (s *CatalogService) DeleteDish(dishID int) error {
	rows, err := s.repo.DeleteDish(dishID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: dish %d", ErrNotFound, dishID)
	}
	return nil
}
