package response

import "filtros_store/internal/domain/entities"

// CheckoutResponse carries what the storefront needs to redirect the buyer
// to the gateway's hosted checkout.
type CheckoutResponse struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

func FromCheckoutRedirect(r entities.CheckoutRedirect) CheckoutResponse {
	return CheckoutResponse{
		PreferenceID:     r.PreferenceID,
		InitPoint:        r.InitPoint,
		SandboxInitPoint: r.SandboxInitPoint,
	}
}
