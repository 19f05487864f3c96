package beer

import (
	"BeerExpiryTracker/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	BeerRepository interface {
		AddBeer(ctx context.Context, beer *entities.Beer) error
		GetBeerByID(ctx context.Context, id string) (*entities.Beer, error)
		UpdateBeer(ctx context.Context, beer *entities.Beer) error
		DeleteBeer(ctx context.Context, id string) error
		GetBeersByUser(ctx context.Context, userID string) ([]*entities.Beer, error)
		SearchBeers(ctx context.Context, userID string, query string) ([]*entities.Beer, error)
		GetBeersByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.Beer, error)
		FindBeersNeedingReminders(ctx context.Context, today time.Time) ([]*entities.Beer, error)
	}

	beerRepository struct {
		db *gorm.DB
	}
)

func NewBeerRepository(db *gorm.DB) BeerRepository {
	return &beerRepository{db: db}
}

func (r *beerRepository) AddBeer(ctx context.Context, beer *entities.Beer) error {
	return r.db.WithContext(ctx).Create(beer).Error
}

func (r *beerRepository) GetBeerByID(ctx context.Context, id string) (*entities.Beer, error) {
	var beer entities.Beer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&beer).Error; err != nil {
		return nil, err
	}
	return &beer, nil
}

func (r *beerRepository) UpdateBeer(ctx context.Context, beer *entities.Beer) error {
	// the owner association is read-only here; only beer columns are saved
	return r.db.WithContext(ctx).Omit("User").Save(beer).Error
}

func (r *beerRepository) DeleteBeer(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Beer{}).Error
}

func (r *beerRepository) GetBeersByUser(ctx context.Context, userID string) ([]*entities.Beer, error) {
	var beers []*entities.Beer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Find(&beers).Error; err != nil {
		return nil, err
	}
	return beers, nil
}

func (r *beerRepository) SearchBeers(ctx context.Context, userID string, query string) ([]*entities.Beer, error) {
	var beers []*entities.Beer
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND (brand_name ILIKE ? OR product_name ILIKE ?)", userID, pattern, pattern).
		Order("expiry_date asc").
		Find(&beers).Error; err != nil {
		return nil, err
	}
	return beers, nil
}

func (r *beerRepository) GetBeersByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.Beer, error) {
	var beers []*entities.Beer
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expiry_date asc").
		Find(&beers).Error; err != nil {
		return nil, err
	}
	return beers, nil
}

func (r *beerRepository) FindBeersNeedingReminders(ctx context.Context, today time.Time) ([]*entities.Beer, error) {
	var beers []*entities.Beer
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("reminder_date <= ? AND reminder_count < ? AND expiry_date > ?",
			today, entities.MaxReminderCount, today).
		Find(&beers).Error; err != nil {
		return nil, err
	}
	return beers, nil
}
