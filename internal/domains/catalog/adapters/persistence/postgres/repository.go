package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/heromeals/orders-api/internal/domains/catalog/domain"
	"github.com/heromeals/orders-api/internal/domains/catalog/ports"
)

var (
	_ ports.HeroRepository = (*HeroRepository)(nil)
	_ ports.MealRepository = (*MealRepository)(nil)
)

// heroRecord maps heroes to a relational table.
type heroRecord struct {
	ID        int64          `gorm:"primaryKey;column:id;autoIncrement"`
	Name      string         `gorm:"column:name"`
	Powers    pq.StringArray `gorm:"column:powers;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (heroRecord) TableName() string { return "heroes" }

// mealRecord maps meals to a relational table.
type mealRecord struct {
	ID          int64          `gorm:"primaryKey;column:id;autoIncrement"`
	Name        string         `gorm:"column:name"`
	Ingredients pq.StringArray `gorm:"column:ingredients;type:text[]"`
	Calories    int32          `gorm:"column:calories"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (mealRecord) TableName() string { return "meals" }

// HeroRepository persists heroes in PostgreSQL using GORM.
type HeroRepository struct {
	db *gorm.DB
}

// NewHeroRepository wires a PostgreSQL-backed hero repository.
func NewHeroRepository(db *gorm.DB) *HeroRepository {
	repo := &HeroRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&heroRecord{})
	}
	return repo
}

func (r *HeroRepository) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record heroRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrHeroNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *HeroRepository) Save(ctx context.Context, hero *domain.Hero) (*domain.Hero, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, errors.New("hero is nil")
	}
	record := heroRecord{ID: hero.ID, Name: hero.Name, Powers: pq.StringArray(hero.Powers)}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"powers":     record.Powers,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// MealRepository persists meals in PostgreSQL using GORM.
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository wires a PostgreSQL-backed meal repository.
func NewMealRepository(db *gorm.DB) *MealRepository {
	repo := &MealRepository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&mealRecord{})
	}
	return repo
}

func (r *MealRepository) GetByID(ctx context.Context, id int64) (*domain.Meal, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record mealRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrMealNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *MealRepository) Save(ctx context.Context, meal *domain.Meal) (*domain.Meal, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, errors.New("meal is nil")
	}
	record := mealRecord{
		ID:          meal.ID,
		Name:        meal.Name,
		Ingredients: pq.StringArray(meal.Ingredients),
		Calories:    meal.Calories,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":        record.Name,
				"ingredients": record.Ingredients,
				"calories":    record.Calories,
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *HeroRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres hero repository not configured")
	}
	return nil
}

func (r *MealRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres meal repository not configured")
	}
	return nil
}

func (r heroRecord) toDomain() *domain.Hero {
	return &domain.Hero{ID: r.ID, Name: r.Name, Powers: []string(r.Powers)}
}

func (r mealRecord) toDomain() *domain.Meal {
	return &domain.Meal{ID: r.ID, Name: r.Name, Ingredients: []string(r.Ingredients), Calories: r.Calories}
}
