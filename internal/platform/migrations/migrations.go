package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := db.AutoMigrate(
		&heroRecord{},
		&mealRecord{},
		&orderRecord{},
	); err != nil {
		return err
	}
	return applyOrderConstraints(db)
}

// applyOrderConstraints enforces that every order references an existing hero
// and meal. AutoMigrate cannot express cross-table constraints between
// independently mapped records, so they are added by hand.
func applyOrderConstraints(db *gorm.DB) error {
	type constraint struct {
		name string
		ddl  string
	}
	constraints := []constraint{
		{
			name: "fk_orders_hero",
			ddl:  "ALTER TABLE orders ADD CONSTRAINT fk_orders_hero FOREIGN KEY (hero_id) REFERENCES heroes(id)",
		},
		{
			name: "fk_orders_meal",
			ddl:  "ALTER TABLE orders ADD CONSTRAINT fk_orders_meal FOREIGN KEY (meal_id) REFERENCES meals(id)",
		},
	}
	for _, c := range constraints {
		if db.Migrator().HasConstraint(&orderRecord{}, c.name) {
			continue
		}
		if err := db.Exec(c.ddl).Error; err != nil {
			return err
		}
	}
	return nil
}

// Hero schema mirrors the catalog Postgres adapter.
type heroRecord struct {
	ID        int64          `gorm:"primaryKey;column:id"`
	Name      string         `gorm:"column:name"`
	Powers    pq.StringArray `gorm:"column:powers;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (heroRecord) TableName() string { return "heroes" }

// Meal schema mirrors the catalog Postgres adapter.
type mealRecord struct {
	ID          int64          `gorm:"primaryKey;column:id"`
	Name        string         `gorm:"column:name"`
	Ingredients pq.StringArray `gorm:"column:ingredients;type:text[]"`
	Calories    int32          `gorm:"column:calories"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (mealRecord) TableName() string { return "meals" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID            int64      `gorm:"primaryKey;column:id;autoIncrement"`
	HeroID        int64      `gorm:"column:hero_id;index:idx_orders_status_hero"`
	MealID        int64      `gorm:"column:meal_id"`
	Status        string     `gorm:"column:status;type:varchar(32);index:idx_orders_status_hero"`
	Message       string     `gorm:"column:message"`
	OrderTime     time.Time  `gorm:"column:order_time;index"`
	CompletedTime *time.Time `gorm:"column:completed_time"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }
