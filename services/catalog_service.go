package services

import (
	"errors"

	"github.com/alibek123/DProject/entity"
	"github.com/alibek123/DProject/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService is the read-only face of the meal catalog.
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListMeals() ([]entity.Meal, error) {
	return s.Repo.ListMeals()
}

func (s *CatalogService) MealDetail(categorySlug, mealSlug string) (*entity.Meal, error) {
	m, err := s.Repo.GetMealBySlugs(categorySlug, mealSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	return m, err
}

func (s *CatalogService) CategoryDetail(slug string) (*entity.Category, error) {
	c, err := s.Repo.GetCategoryBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	return c, err
}

// MealInput carries the admin-supplied fields for a new meal.
type MealInput struct {
	Title              string
	Slug               string
	Price              decimal.Decimal
	AvailableInventory int
	CategoryID         uint
}

func (s *CatalogService) CreateMeal(in *MealInput) (*entity.Meal, error) {
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}

	m := &entity.Meal{
		Title:              in.Title,
		Slug:               in.Slug,
		Price:              in.Price,
		AvailableInventory: in.AvailableInventory,
		CategoryID:         in.CategoryID,
	}
	if err := s.Repo.CreateMeal(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *CatalogService) UpdateMeal(id uint, updates map[string]any) (*entity.Meal, error) {
	if cid, ok := updates["category_id"].(uint); ok {
		exists, err := s.Repo.CategoryExists(cid)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCategoryNotFound
		}
	}

	affected, err := s.Repo.UpdateMeal(id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrMealNotFound
	}
	return s.Repo.GetMealByID(id)
}
