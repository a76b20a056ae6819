package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"custsvc/internal/domain"
	"custsvc/internal/dto"
	"custsvc/internal/pkg/log"
	"custsvc/internal/validation"
)

type Handler struct {
	UC  domain.CustomerUsecase
	Val *validator.Validate
}

func NewHandler(uc domain.CustomerUsecase) *Handler { return &Handler{UC: uc, Val: validation.New()} }

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.Filter{
		Name:  q.Get("name"),
		City:  q.Get("city"),
		State: q.Get("state"),
		Zip:   q.Get("zip"),
	}

	rows, err := h.UC.List(r.Context(), f)
	if err != nil {
		log.Error.Printf("list_customers repo_err filter=%+v err=%v", f, err)
		writeServerErr(w, err)
		return
	}

	out := make([]dto.CustomerRowResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, dto.CustomerRowResponse{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
			Email:     c.Email,
			Street:    c.Street,
			City:      c.City,
			State:     c.State,
			Zip:       c.Zip,
		})
	}
	log.Info.Printf("list_customers ok rows=%d", len(out))
	writeJSON(w, StatusOK, out)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		log.Error.Printf("get_customer invalid_id id=%q", mux.Vars(r)["id"])
		writeText(w, StatusBadRequest, MsgInvalidID)
		return
	}
	c, err := h.UC.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeText(w, StatusNotFound, MsgNotFound)
			return
		}
		log.Error.Printf("get_customer repo_err id=%d err=%v", id, err)
		writeServerErr(w, err)
		return
	}
	if c == nil {
		writeText(w, StatusNotFound, MsgNotFound)
		return
	}

	resp := dto.CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Addresses: make([]dto.AddressResponse, 0, len(c.Addresses)),
	}
	for _, a := range c.Addresses {
		resp.Addresses = append(resp.Addresses, dto.AddressResponse{
			ID:         a.ID,
			CustomerID: a.CustomerID,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			Zip:        a.Zip,
			IsPrimary:  a.IsPrimary,
		})
	}
	log.Info.Printf("get_customer ok id=%d", id)
	writeJSON(w, StatusOK, resp)
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("create_customer decode_json err=%v", err)
		writeText(w, StatusBadRequest, MsgInvalidJSON)
		return
	}
	c := toDomain(req)
	if msg := validation.ValidateCustomer(h.Val, c); msg != "" {
		log.Warn.Printf("create_customer invalid msg=%q", msg)
		writeText(w, StatusBadRequest, msg)
		return
	}

	id, err := h.UC.Create(r.Context(), c)
	if err != nil {
		log.Error.Printf("create_customer repo_err email=%q err=%v", c.Email, err)
		writeServerErr(w, err)
		return
	}
	log.Info.Printf("create_customer ok id=%d addresses=%d", id, len(c.Addresses))
	writeJSON(w, StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		log.Error.Printf("update_customer invalid_id id=%q", mux.Vars(r)["id"])
		writeText(w, StatusBadRequest, MsgInvalidID)
		return
	}
	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("update_customer decode_json err=%v", err)
		writeText(w, StatusBadRequest, MsgInvalidJSON)
		return
	}
	c := toDomain(req)
	if msg := validation.ValidateCustomer(h.Val, c); msg != "" {
		log.Warn.Printf("update_customer invalid id=%d msg=%q", id, msg)
		writeText(w, StatusBadRequest, msg)
		return
	}

	if err := h.UC.Update(r.Context(), id, c); err != nil {
		log.Error.Printf("update_customer repo_err id=%d err=%v", id, err)
		writeServerErr(w, err)
		return
	}
	log.Info.Printf("update_customer ok id=%d addresses=%d", id, len(c.Addresses))
	writeText(w, StatusOK, MsgUpdated)
}

// DeleteCustomer treats an id that is not an integer like an unknown id:
// nothing matches, so the delete is a successful no-op.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		log.Warn.Printf("delete_customer noop id=%q", mux.Vars(r)["id"])
		writeText(w, StatusOK, MsgDeleted)
		return
	}
	if err := h.UC.Delete(r.Context(), id); err != nil {
		log.Error.Printf("delete_customer repo_err id=%d err=%v", id, err)
		writeServerErr(w, err)
		return
	}
	log.Info.Printf("delete_customer ok id=%d", id)
	writeText(w, StatusOK, MsgDeleted)
}

func customerID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func toDomain(req dto.CreateCustomerRequest) domain.Customer {
	c := domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     string(req.Phone),
		Email:     req.Email,
	}
	for _, a := range req.Addresses {
		c.Addresses = append(c.Addresses, domain.Address{
			Street: a.Street, City: a.City, State: a.State, Zip: a.Zip, IsPrimary: a.IsPrimary,
		})
	}
	return c
}
