package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"foodcourt/internal/domain"
	"foodcourt/internal/service"
)

type Handler struct {
	Auth     service.AuthServiceInterface
	Catalog  service.CatalogServiceInterface
	Cart     service.CartServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrderServiceInterface
}

func NewHandler(auth service.AuthServiceInterface, catalog service.CatalogServiceInterface, cart service.CartServiceInterface, checkout service.CheckoutServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{
		Auth:     auth,
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Orders:   orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router, secret []byte) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/register", h.register).Methods("POST")
	r.HandleFunc("/login", h.login).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(secret))

	api.HandleFunc("/logout", h.logout).Methods("POST")

	api.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	api.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	api.HandleFunc("/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")

	api.HandleFunc("/cart", h.viewCart).Methods("GET")
	api.HandleFunc("/cart/dish/add", h.addToCart).Methods("POST")
	api.HandleFunc("/cart/dish/delete", h.removeFromCart).Methods("POST")

	api.HandleFunc("/orders", h.listOrders).Methods("GET")
	api.HandleFunc("/orders/checkout", h.checkout).Methods("POST")
	api.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "foodcourt",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.Auth.Register(req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"detail": "Successfully logged in",
		"token":  token,
	})
}

// Tokens are stateless; logout is a client-side discard.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"detail": "Successfully logged out"})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(
		r.URL.Query().Get("dish_name"),
		r.URL.Query().Get("restaurant_id"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadRestaurantID):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoRestaurantsFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Catalog.CreateRestaurant(&rest); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, rest)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	dish.RestaurantID = restaurantID
	if err := h.Catalog.CreateDish(&dish); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, dish)
}

type cartRequest struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	h.mutateCart(w, r, h.Cart.Add)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	h.mutateCart(w, r, h.Cart.Remove)
}

func (h *Handler) mutateCart(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, dishID, quantity int) error) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := op(r.Context(), userID, req.DishID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, domain.ErrDishNotFound):
			respondError(w, http.StatusBadRequest, "Dish not found")
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	lines, total, err := h.Cart.View(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total_price": total,
		"positions":   lines,
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Checkout.Checkout(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			respondError(w, http.StatusBadRequest, "No items in cart for order creation")
		case errors.Is(err, domain.ErrInsufficientFunds):
			respondError(w, http.StatusPaymentRequired, "Debit amount exceeds account balance")
		case errors.Is(err, domain.ErrDishNotFound):
			respondError(w, http.StatusConflict, "Dish not found")
		case errors.Is(err, domain.ErrCheckoutInProgress):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := authenticatedUserID(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.Orders.ListRecent(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if len(qrCode) == 0 {
		respondError(w, http.StatusNotFound, "QR code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
