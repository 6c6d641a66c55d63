package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Reports service.ReportServiceInterface
	QR      service.QRGenerator

	ClientBaseURL string
	StaffBaseURL  string
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface,
	reports service.ReportServiceInterface, qr service.QRGenerator, clientBaseURL, staffBaseURL string) *Handler {
	return &Handler{
		Catalog:       catalog,
		Orders:        orders,
		Reports:       reports,
		QR:            qr,
		ClientBaseURL: clientBaseURL,
		StaffBaseURL:  staffBaseURL,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/register", h.registerRestaurant).Methods("POST")

	r.HandleFunc("/api/menu/{publicId}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/add/{publicId}", h.addDish).Methods("POST")
	r.HandleFunc("/api/menu/{dishId:[0-9]+}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/orders/pending/{publicId}", h.getPendingOrders).Methods("GET")
	r.HandleFunc("/api/orders/confirmed/{publicId}", h.getConfirmedOrders).Methods("GET")
	r.HandleFunc("/api/order/{orderId:[0-9]+}/confirm", h.confirmOrder).Methods("POST")
	r.HandleFunc("/api/order/{orderId:[0-9]+}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/order/{orderId:[0-9]+}/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/order/{publicId}", h.createOrder).Methods("POST")

	r.HandleFunc("/api/stats/today/{publicId}", h.getStatsToday).Methods("GET")
	r.HandleFunc("/api/qrcode/{publicId}", h.getTableQRCode).Methods("GET")
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrDishNotFound):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrDuplicateName):
		code = http.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// flexString tolerates clients sending a JSON number where a string is
// expected, which happens with table numbers.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) registerRestaurant(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	rest, err := h.Catalog.Register(payload.Name, payload.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"restaurant_id": rest.PublicID,
		"client_url":    h.ClientBaseURL + "/client/" + rest.PublicID,
		"staff_url":     h.StaffBaseURL + "/staff/" + rest.PublicID,
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetByPublicID(mux.Vars(r)["publicId"])
	if err != nil {
		writeError(w, err)
		return
	}

	menu, err := h.Catalog.ListMenu(rest.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) addDish(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetByPublicID(mux.Vars(r)["publicId"])
	if err != nil {
		writeError(w, err)
		return
	}

	req, ok := h.decodeAddDish(w, r)
	if !ok {
		return
	}

	dish, err := h.Catalog.AddDish(rest.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": dish.ID})
}

// decodeAddDish accepts either a JSON body with a base64 image_data field
// or a multipart form with an image file. An unreadable image is dropped,
// not rejected; the dish goes in without one.
func (h *Handler) decodeAddDish(w http.ResponseWriter, r *http.Request) (service.AddDishRequest, bool) {
	var req service.AddDishRequest

	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file too large"})
			return req, false
		}
		req.Name = r.FormValue("name")
		req.Description = r.FormValue("description")
		req.Category = r.FormValue("category")
		req.Price = r.FormValue("price")

		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				log.Printf("[api] dropping unreadable dish image: %v", readErr)
			} else {
				req.Image = data
				req.ImageType = header.Header.Get("Content-Type")
			}
		}
		return req, true
	}

	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Price       string `json:"price"`
		ImageData   string `json:"image_data"`
		ImageType   string `json:"image_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return req, false
	}

	req.Name = payload.Name
	req.Description = payload.Description
	req.Category = payload.Category
	req.Price = payload.Price
	req.ImageType = payload.ImageType
	if payload.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(payload.ImageData)
		if err != nil {
			log.Printf("[api] dropping undecodable dish image: %v", err)
		} else {
			req.Image = data
		}
	}
	return req, true
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	if err := h.Catalog.DeleteDish(dishID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) getPendingOrders(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetByPublicID(mux.Vars(r)["publicId"])
	if err != nil {
		writeError(w, err)
		return
	}

	orders, err := h.Orders.ListPending(rest.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getConfirmedOrders(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetByPublicID(mux.Vars(r)["publicId"])
	if err != nil {
		writeError(w, err)
		return
	}

	orders, err := h.Orders.ListConfirmed(rest.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetByPublicID(mux.Vars(r)["publicId"])
	if err != nil {
		writeError(w, err)
		return
	}

	var payload struct {
		TableNumber flexString        `json:"table_number"`
		Items       []domain.CartItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	order, err := h.Orders.Create(r.Context(), rest.ID, string(payload.TableNumber), payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"order_id": order.ID})
}

func (h *Handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	if err := h.Orders.Confirm(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	if err := h.Orders.Delete(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["orderId"])
	status, err := h.Orders.Status(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) getStatsToday(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetByPublicID(mux.Vars(r)["publicId"])
	if err != nil {
		writeError(w, err)
		return
	}

	sales, err := h.Reports.DailySales(rest.ID, time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetByPublicID(mux.Vars(r)["publicId"])
	if err != nil {
		writeError(w, err)
		return
	}

	png, err := h.QR.Generate(rest.PublicID, r.URL.Query().Get("table"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate QR code"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
