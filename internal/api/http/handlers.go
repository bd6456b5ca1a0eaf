package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"ordering-backend/internal/domain"
	"ordering-backend/internal/service"
)

type Handler struct {
	Accounts    service.AccountServiceInterface
	Restaurants service.RestaurantServiceInterface
	Catalog     service.CatalogServiceInterface
	Menu        service.MenuServiceInterface
	Orders      service.OrderServiceInterface
	Reviews     service.ReviewServiceInterface
}

func NewHandler(accounts service.AccountServiceInterface, restaurants service.RestaurantServiceInterface,
	catalog service.CatalogServiceInterface, menu service.MenuServiceInterface,
	orders service.OrderServiceInterface, reviews service.ReviewServiceInterface) *Handler {
	return &Handler{
		Accounts:    accounts,
		Restaurants: restaurants,
		Catalog:     catalog,
		Menu:        menu,
		Orders:      orders,
		Reviews:     reviews,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/customers/signup", h.customerSignUp).Methods("POST")
	r.HandleFunc("/api/customers/signin", h.customerSignIn).Methods("POST")
	r.HandleFunc("/api/customers/duplicate", h.customerDuplicate).Methods("POST")
	r.HandleFunc("/api/customers/{id}/phone", h.changePhoneNumber).Methods("PUT")
	r.HandleFunc("/api/customers/{id}/password", h.changeCustomerPassword).Methods("PUT")
	r.HandleFunc("/api/customers/{id}", h.deleteCustomer).Methods("DELETE")
	r.HandleFunc("/api/customers/{id}/orders", h.listCustomerOrders).Methods("GET")

	r.HandleFunc("/api/restaurants/signup", h.restaurantSignUp).Methods("POST")
	r.HandleFunc("/api/restaurants/signin", h.restaurantSignIn).Methods("POST")
	r.HandleFunc("/api/restaurants/duplicate", h.restaurantDuplicate).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurantPreviews).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.putRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/password", h.changeRestaurantPassword).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/profile-image", h.putProfileImage).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/background-image", h.putBackgroundImage).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/sales", h.getMonthlySales).Methods("POST")

	r.HandleFunc("/api/restaurants/{restaurantId}/foods", h.registerFood).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/foods", h.listFoods).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/foods/{foodId}", h.updateFood).Methods("PUT")
	r.HandleFunc("/api/foods/{foodId}", h.deleteFood).Methods("DELETE")
	r.HandleFunc("/api/foods/{foodId}/status", h.setSoldOut).Methods("PUT")

	r.HandleFunc("/api/restaurants/{restaurantId}/representative", h.addRepresentative).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/representative", h.removeRepresentative).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/preview", h.listPreview).Methods("GET")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}/review", h.registerReview).Methods("POST")
	r.HandleFunc("/api/reviews/{id}", h.updateReview).Methods("PUT")
	r.HandleFunc("/api/reviews/{id}", h.deleteReview).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "ordering-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the domain taxonomy onto HTTP statuses. Storage errors
// come back as 502 so the transport boundary may retry once.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrStorage):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pathInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(mux.Vars(r)[name])
	return v
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// readImagePart pulls the optional "image" part out of a multipart body.
// Returns nil bytes when the request carries no image.
func readImagePart(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, "", errors.New("file too large")
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return nil, "", errors.New("invalid file type, only JPEG, PNG, GIF, WebP allowed")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

// --- accounts ---

type signUpRequest struct {
	SignInID    string `json:"signin_id"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Intro       string `json:"intro"`
}

type signInRequest struct {
	SignInID string `json:"signin_id"`
	Password string `json:"password"`
}

func (h *Handler) customerSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Accounts.SignUp(&domain.Customer{
		SignInID:    req.SignInID,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *Handler) customerSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	customer, err := h.Accounts.SignIn(req.SignInID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if customer == nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) customerDuplicate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SignInID string `json:"signin_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	duplicated, err := h.Accounts.IsIDDuplicated(req.SignInID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"duplicated": duplicated})
}

func (h *Handler) changePhoneNumber(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Accounts.ChangePhoneNumber(pathInt(r, "id"), req.PhoneNumber); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) changeCustomerPassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	changed, err := h.Accounts.ChangePassword(pathInt(r, "id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"changed": changed})
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Accounts.DeleteAccount(pathInt(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- restaurants ---

func (h *Handler) restaurantSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Restaurants.SignUp(&domain.Restaurant{
		SignInID: req.SignInID,
		Password: req.Password,
		Name:     req.Name,
		Intro:    req.Intro,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *Handler) restaurantSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest, err := h.Restaurants.SignIn(req.SignInID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if rest == nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) restaurantDuplicate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SignInID string `json:"signin_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	duplicated, err := h.Restaurants.IsIDDuplicated(req.SignInID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"duplicated": duplicated})
}

func (h *Handler) changeRestaurantPassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	changed, err := h.Restaurants.ChangePassword(pathInt(r, "id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"changed": changed})
}

func (h *Handler) putRestaurant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Intro string `json:"intro"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.PutInfo(r.Context(), pathInt(r, "id"), req.Name, req.Intro); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) putProfileImage(w http.ResponseWriter, r *http.Request) {
	image, name, err := readImagePart(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	url, err := h.Restaurants.PutProfileImage(r.Context(), pathInt(r, "id"), image, name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": url})
}

func (h *Handler) putBackgroundImage(w http.ResponseWriter, r *http.Request) {
	image, name, err := readImagePart(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	url, err := h.Restaurants.PutBackgroundImage(r.Context(), pathInt(r, "id"), image, name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": url})
}

func (h *Handler) getRestaurantPreviews(w http.ResponseWriter, r *http.Request) {
	previews, err := h.Restaurants.GetAllForPreview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, previews)
}

func (h *Handler) getMonthlySales(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From   string `json:"from"`
		Before string `json:"before"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	before, err := time.Parse("2006-01-02", req.Before)
	if err != nil {
		http.Error(w, "invalid before date", http.StatusBadRequest)
		return
	}
	sales, err := h.Orders.MonthlySales(r.Context(), pathInt(r, "id"), from, before)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

// --- foods ---

type foodRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Intro string `json:"intro"`
}

// decodeFoodRequest accepts either a plain JSON body or a multipart body
// with a "food" JSON part and an optional "image" part.
func decodeFoodRequest(r *http.Request) (*foodRequest, []byte, string, error) {
	var req foodRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		image, imageName, err := readImagePart(r)
		if err != nil {
			return nil, nil, "", err
		}
		if err := json.Unmarshal([]byte(r.FormValue("food")), &req); err != nil {
			return nil, nil, "", err
		}
		return &req, image, imageName, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, nil, "", err
	}
	return &req, nil, "", nil
}

func (h *Handler) registerFood(w http.ResponseWriter, r *http.Request) {
	req, image, imageName, err := decodeFoodRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	food := &domain.Food{Name: req.Name, Price: req.Price, Intro: req.Intro}
	id, err := h.Catalog.RegisterFood(r.Context(), pathInt(r, "restaurantId"), food, image, imageName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	req, image, imageName, err := decodeFoodRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	food := &domain.Food{Name: req.Name, Price: req.Price, Intro: req.Intro}
	if err := h.Catalog.UpdateFood(r.Context(), pathInt(r, "restaurantId"), pathInt(r, "foodId"), food, image, imageName); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteFood(r.Context(), pathInt(r, "foodId")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSoldOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SoldOut bool `json:"sold_out"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.SetSoldOut(pathInt(r, "foodId"), req.SoldOut); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.ListFoods(pathInt(r, "restaurantId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

// --- representative menu ---

func (h *Handler) addRepresentative(w http.ResponseWriter, r *http.Request) {
	foodID, err := strconv.Atoi(r.URL.Query().Get("food_id"))
	if err != nil {
		http.Error(w, "missing food_id", http.StatusBadRequest)
		return
	}
	added, err := h.Menu.AddRepresentative(r.Context(), pathInt(r, "restaurantId"), foodID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": added})
}

func (h *Handler) removeRepresentative(w http.ResponseWriter, r *http.Request) {
	foodID, err := strconv.Atoi(r.URL.Query().Get("food_id"))
	if err != nil {
		http.Error(w, "missing food_id", http.StatusBadRequest)
		return
	}
	if err := h.Menu.RemoveRepresentative(r.Context(), pathInt(r, "restaurantId"), foodID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPreview(w http.ResponseWriter, r *http.Request) {
	names, err := h.Menu.ListPreview(pathInt(r, "restaurantId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"food_names": names})
}

// --- orders ---

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID   int               `json:"customer_id"`
		RestaurantID int               `json:"restaurant_id"`
		OrderType    domain.OrderType  `json:"order_type"`
		Items        []domain.LineItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Orders.PlaceOrder(r.Context(), req.CustomerID, req.RestaurantID, req.Items, req.OrderType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrder(pathInt(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListCustomerOrders(pathInt(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.UpdateStatus(r.Context(), pathInt(r, "id"), req.Status); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.GetQRCode(pathInt(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

// --- reviews ---

func (h *Handler) registerReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	registered, err := h.Reviews.Register(r.Context(), pathInt(r, "restaurantId"), pathInt(r, "orderId"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if registered {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]bool{"registered": registered})
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Reviews.UpdateText(pathInt(r, "id"), req.Content); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.Reviews.Delete(r.Context(), pathInt(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
