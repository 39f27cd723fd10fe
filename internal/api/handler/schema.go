package handler

// Request and response types owned by the transport layer. These are
// intentionally separate from ports/domain types so the JSON contract is not
// coupled to internal service changes — and so the plaintext password field
// on domain.User can never leak into a response.

// dateLayout is the calendar-date wire format for transactions.
const dateLayout = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- Transactions ---

// A zero amount fails the required check, exactly like an absent one. That
// mirrors the core's contract and is deliberate.
type createTransactionRequest struct {
	Kind        string  `json:"kind"        validate:"required,oneof=income expense"`
	CategoryID  int64   `json:"category_id" validate:"required"`
	Amount      float64 `json:"amount"      validate:"required"`
	Description string  `json:"description" validate:"required"`
	Date        string  `json:"date"        validate:"required"` // YYYY-MM-DD
}

type transactionResponse struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type summaryResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

type categoryAmountResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// --- Goals ---

type createGoalRequest struct {
	Name   string  `json:"name"   validate:"required"`
	Target float64 `json:"target" validate:"required"`
}

type goalResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Target  string `json:"target"`
	Current string `json:"current"`
	// ProgressPercent is clamped to 0 when the core yields a non-finite
	// value; JSON has no encoding for Inf/NaN.
	ProgressPercent float64 `json:"progress_percent"`
}
