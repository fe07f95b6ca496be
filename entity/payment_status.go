package entity

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed:
		return true
	}
	return false
}
