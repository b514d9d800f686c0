package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"loans-api/internal/books"
	"loans-api/internal/constants"
	"loans-api/internal/models"
	"loans-api/internal/store"
	"loans-api/internal/utils"
)

type LoanHandler struct {
	Store          *store.LoanStore
	Books          books.Lookup
	AuditLogger    utils.Logger
	MaxMemberLoans int

	validate *validator.Validate
}

func NewLoanHandler(loanStore *store.LoanStore, bookLookup books.Lookup, logger utils.Logger, maxMemberLoans int) *LoanHandler {
	return &LoanHandler{
		Store:          loanStore,
		Books:          bookLookup,
		AuditLogger:    logger,
		MaxMemberLoans: maxMemberLoans,
		validate:       validator.New(),
	}
}

type CreateLoanRequest struct {
	MemberName string `json:"memberName" validate:"required"`
	ISBN       string `json:"ISBN" validate:"required"`
	LoanDate   string `json:"loanDate" validate:"required"`
}

// POST /loans
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Unsupported media type", http.StatusUnsupportedMediaType)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.JSONError(w, "Unprocessable Content", http.StatusUnprocessableEntity)
		return
	}

	book, err := h.Books.ByISBN(r.Context(), req.ISBN)
	if err != nil {
		switch {
		case errors.Is(err, books.ErrNotFound):
			utils.JSONError(w, "Book not found", http.StatusUnprocessableEntity)
		case errors.Is(err, books.ErrBadStatus):
			utils.JSONError(w, "Books service rejected the lookup", http.StatusUnprocessableEntity)
		default:
			utils.JSONError(w, "Internal Server Error: Unable to connect to Books Service", http.StatusInternalServerError)
		}
		return
	}

	existing, err := h.Store.FindByFilter(r.Context(), map[string]string{"ISBN": req.ISBN})
	if err != nil {
		utils.JSONError(w, "Failed to fetch loans", http.StatusInternalServerError)
		return
	}
	if len(existing) > 0 {
		utils.JSONError(w, "Book already on loan", http.StatusUnprocessableEntity)
		return
	}

	memberLoans, err := h.Store.FindByFilter(r.Context(), map[string]string{"memberName": req.MemberName})
	if err != nil {
		utils.JSONError(w, "Failed to fetch loans", http.StatusInternalServerError)
		return
	}
	if len(memberLoans) >= h.MaxMemberLoans {
		utils.JSONError(w, "Member has too many loans", http.StatusUnprocessableEntity)
		return
	}

	loan := models.Loan{
		MemberName: req.MemberName,
		ISBN:       req.ISBN,
		Title:      book.Title,
		BookID:     book.ID,
		LoanDate:   req.LoanDate,
	}

	loanID, err := h.Store.Insert(r.Context(), loan)
	if err != nil {
		// Lost the race against a concurrent creation for the same ISBN.
		if errors.Is(err, store.ErrDuplicateISBN) {
			utils.JSONError(w, "Unable to create loan", http.StatusUnprocessableEntity)
			return
		}
		utils.JSONError(w, "Failed to record loan", http.StatusInternalServerError)
		return
	}

	h.AuditLogger.Log(r.Context(), models.LoanEntity, constants.Create, loanID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"loanID": loanID})
}

// GET /loans
func (h *LoanHandler) GetLoans(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var loans []models.Loan
	var err error
	if len(params) == 0 {
		loans, err = h.Store.FindAll(r.Context())
	} else {
		filter := make(map[string]string, len(params))
		for field, values := range params {
			filter[field] = values[0]
		}
		loans, err = h.Store.FindByFilter(r.Context(), filter)
	}
	if err != nil {
		utils.JSONError(w, "Failed to fetch loans", http.StatusInternalServerError)
		return
	}

	if loans == nil {
		loans = []models.Loan{}
	}
	json.NewEncoder(w).Encode(loans)
}

// GET /loan/{id}
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID := mux.Vars(r)["id"]

	loan, found, err := h.Store.FindByID(r.Context(), loanID)
	if err != nil {
		utils.JSONError(w, "Failed to fetch loan", http.StatusInternalServerError)
		return
	}
	if !found {
		utils.JSONError(w, "Not Found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(loan)
}

// DELETE /loan/{id}
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	loanID := mux.Vars(r)["id"]

	found, err := h.Store.Delete(r.Context(), loanID)
	if err != nil {
		utils.JSONError(w, "Delete failed", http.StatusInternalServerError)
		return
	}
	if !found {
		utils.JSONError(w, "Not Found", http.StatusNotFound)
		return
	}

	h.AuditLogger.Log(r.Context(), models.LoanEntity, constants.Delete, loanID)

	json.NewEncoder(w).Encode(map[string]string{"loanID": loanID})
}
