package repositories

import (
	"fitmanager-backend/models"

	"gorm.io/gorm"
)

// Store bundles one repository per entity together with the lifetime of the
// backing connection pool.
type Store struct {
	Customers        Repository[models.Customer]
	Packages         Repository[models.Package]
	CustomerPackages Repository[models.CustomerPackage]
	Appointments     Repository[models.Appointment]
	Payments         Repository[models.Payment]

	close func() error
}

// NewGormStore builds a store over db. Close releases db's connection pool.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Customers:        NewGormRepository[models.Customer](db),
		Packages:         NewGormRepository[models.Package](db),
		CustomerPackages: NewGormRepository[models.CustomerPackage](db),
		Appointments:     NewGormRepository[models.Appointment](db),
		Payments:         NewGormRepository[models.Payment](db),
		close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func NewMemoryStore() *Store {
	return &Store{
		Customers:        NewMemoryRepository[models.Customer](),
		Packages:         NewMemoryRepository[models.Package](),
		CustomerPackages: NewMemoryRepository[models.CustomerPackage](),
		Appointments:     NewMemoryRepository[models.Appointment](),
		Payments:         NewMemoryRepository[models.Payment](),
	}
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Models lists every persisted model, in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.Customer{},
		&models.Package{},
		&models.CustomerPackage{},
		&models.Appointment{},
		&models.Payment{},
	}
}
