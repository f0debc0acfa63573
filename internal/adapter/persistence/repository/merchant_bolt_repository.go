package repository

import (
	"context"
	"encoding/json"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/usecase/interfaces"

	"github.com/boltdb/bolt"
)

var merchantsBucket = []byte("merchants")

// MerchantBoltRepository keeps MerchantProfile records as JSON values in a
// single Bolt bucket keyed by merchant id.
type MerchantBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IMerchantRepository = (*MerchantBoltRepository)(nil)

func NewMerchantBoltRepository(db *bolt.DB) (*MerchantBoltRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(merchantsBucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &MerchantBoltRepository{db: db}, nil
}

func (r *MerchantBoltRepository) Create(_ context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error) {
	v, err := json.Marshal(toMerchantItem(m))
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	err = r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(merchantsBucket)
		if b.Get([]byte(m.ID)) != nil {
			return entities.ErrMerchantExists
		}
		return b.Put([]byte(m.ID), v)
	})
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	return m, nil
}

func (r *MerchantBoltRepository) GetByID(_ context.Context, id string) (entities.MerchantProfile, error) {
	var it merchantItem
	var found bool
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(merchantsBucket).Get([]byte(id))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &it)
	})
	if err != nil || !found {
		return entities.MerchantProfile{}, err
	}
	return fromMerchantItem(it), nil
}

func (r *MerchantBoltRepository) Put(_ context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error) {
	v, err := json.Marshal(toMerchantItem(m))
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	err = r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(merchantsBucket).Put([]byte(m.ID), v)
	})
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	return m, nil
}

// Delete is idempotent: removing a missing merchant is not an error.
func (r *MerchantBoltRepository) Delete(_ context.Context, id string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(merchantsBucket).Delete([]byte(id))
	})
}
