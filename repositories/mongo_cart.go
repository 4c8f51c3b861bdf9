package repositories

import (
	"ecommerce-backend/models"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// mongoCart is the stored form of a cart. Carts written by the old Node
// backend have string keys, int32 or double values, and can carry a NaN slot
// outside 0..299 from an out-of-range add. Those slots are dropped on read,
// and non-finite or negative in-range values read as zero.
type mongoCart models.CartData

func (c mongoCart) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(models.CartData(c))
}

func (c *mongoCart) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*c = nil
		return nil
	}

	var raw map[string]float64
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&raw); err != nil {
		return errors.Wrap(err, "decode cartData")
	}

	cart := make(mongoCart, len(raw))
	for key, qty := range raw {
		slot, err := strconv.Atoi(key)
		if err != nil || slot < 0 || slot >= models.CartSlots {
			continue
		}
		if math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 {
			qty = 0
		}
		cart[slot] = int(qty)
	}
	*c = cart
	return nil
}
