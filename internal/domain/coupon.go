package domain

type Coupon struct {
	ID     string  `json:"_id" bson:"_id"`
	Code   string  `json:"code" bson:"code"`
	Amount float64 `json:"amount" bson:"amount"`
}

type NewCoupon struct {
	Code   string  `json:"code" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
}
