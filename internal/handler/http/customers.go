package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/internal/utils"
	"github.com/MKhiriev/customer-management/models"
	"github.com/go-chi/chi/v5"
)

// getAllCustomers handles GET /api/customers.
// An empty store is reported as 204 No Content rather than an empty JSON
// array with 200.
func (h *Handler) getAllCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customers, err := h.services.CustomerService.GetAllCustomers(ctx)
	if err != nil {
		log.Err(err).Msg("listing customers failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if len(customers) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

// getCustomerByID handles GET /api/customers/{id}.
func (h *Handler) getCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	customer, err := h.services.CustomerService.GetCustomerByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("customer lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

// createCustomer handles POST /api/customers.
// On success it responds with 201 Created, the stored customer as the body,
// and a Location header pointing to the record's canonical URL.
func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var customerRequest models.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&customerRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CustomerService.AddCustomer(ctx, customerRequest.Name, customerRequest.Email)
	if err != nil {
		log.Err(err).Str("email", customerRequest.Email).Msg("customer creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/customers/%s", created.ID))
	utils.WriteJSON(w, created, http.StatusCreated)
}
