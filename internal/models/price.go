package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Price distinguishes a real amount from "price on request" instead of
// overloading zero. Legacy documents and payloads store a bare number,
// where zero meant on request.
type Price struct {
	Amount    float64 `json:"amount" bson:"amount"`
	OnRequest bool    `json:"onRequest" bson:"onRequest"`
}

func Priced(amount float64) Price {
	if amount <= 0 {
		return PriceOnRequest()
	}
	return Price{Amount: amount}
}

func PriceOnRequest() Price {
	return Price{OnRequest: true}
}

// LegacyAmount is the bare-number form the storefront consumes: zero
// signals on request.
func (p Price) LegacyAmount() float64 {
	if p.OnRequest {
		return 0
	}
	return p.Amount
}

// UnmarshalJSON accepts both the tagged object form and the legacy bare
// number, so admin payloads from older clients keep working.
func (p *Price) UnmarshalJSON(data []byte) error {
	var amount float64
	if err := json.Unmarshal(data, &amount); err == nil {
		*p = Priced(amount)
		return nil
	}

	type priceAlias Price
	var alias priceAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = Price(alias)
	if p.OnRequest {
		p.Amount = 0
	}
	return nil
}

// UnmarshalBSONValue accepts numeric BSON types as well as the embedded
// document form, allowing legacy product documents to be decoded
// without failing the entire request.
func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*p = PriceOnRequest()
		return nil
	case bsontype.Double:
		var value float64
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*p = Priced(value)
		return nil
	case bsontype.Int32:
		var value int32
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*p = Priced(float64(value))
		return nil
	case bsontype.Int64:
		var value int64
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*p = Priced(float64(value))
		return nil
	case bsontype.EmbeddedDocument:
		var doc struct {
			Amount    float64 `bson:"amount"`
			OnRequest bool    `bson:"onRequest"`
		}
		if err := bson.UnmarshalValue(t, data, &doc); err != nil {
			return err
		}
		if doc.OnRequest {
			*p = PriceOnRequest()
		} else {
			*p = Priced(doc.Amount)
		}
		return nil
	default:
		return fmt.Errorf("cannot decode %s into Price", t)
	}
}

// MarshalBSONValue always stores the tagged form, keeping new writes
// consistent even when legacy documents used a bare number.
func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	type priceDoc struct {
		Amount    float64 `bson:"amount"`
		OnRequest bool    `bson:"onRequest"`
	}
	return bson.MarshalValue(priceDoc{Amount: p.Amount, OnRequest: p.OnRequest})
}
