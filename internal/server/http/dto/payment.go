package dto

// PaymentVerifyRequest is the gateway success callback relayed by the
// storefront. Amount is in paise.
type PaymentVerifyRequest struct {
	GatewayOrderID string `json:"razorpayOrderId" binding:"required"`
	PaymentID      string `json:"razorpayPaymentId" binding:"required"`
	Signature      string `json:"razorpaySignature" binding:"required"`
	Amount         int64  `json:"amount"`
	Method         string `json:"method"`
}

// PaymentFailureRequest reports a failed payment attempt.
type PaymentFailureRequest struct {
	Reason string `json:"reason"`
}
