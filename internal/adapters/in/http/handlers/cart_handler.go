// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	cartdom "fashionistic/internal/domain/cart"
)

// CartHandler serves the session cart endpoints.
//
//	GET    /cart           current cart + derived total
//	DELETE /cart           clear
//	POST   /cart/items     add one unit of a product
//	PUT    /cart/items     set quantity (<=0 removes)
//	DELETE /cart/items     remove a product
//	POST   /cart/toggle    flip panel visibility
//
// The session id comes from X-Session-Id (or ?sessionId=). Carts are pure
// in-process state: a deploy or restart empties them all.
type CartHandler struct {
	store *cartdom.Store
}

func NewCartHandler(store *cartdom.Store) http.Handler {
	return &CartHandler{store: store}
}

// cartDTO is the response shape; total is always recomputed.
type cartDTO struct {
	Items  []cartdom.Item `json:"items"`
	Total  float64        `json:"total"`
	IsOpen bool           `json:"isCartOpen"`
}

func toDTO(c cartdom.Cart) cartDTO {
	total := 0.0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return cartDTO{Items: c.Items, Total: total, IsOpen: c.IsOpen}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	sid := readSessionID(r)
	if sid == "" {
		badRequest(w, "X-Session-Id is required")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/cart"):
		h.respondWith(w, sid, nil)

	case r.Method == http.MethodDelete && strings.HasSuffix(path, "/cart"):
		h.respondWith(w, sid, func(c *cartdom.Cart) error {
			c.Clear()
			return nil
		})

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/cart/toggle"):
		h.respondWith(w, sid, func(c *cartdom.Cart) error {
			c.Toggle()
			return nil
		})

	case strings.HasSuffix(path, "/cart/items"):
		h.handleItems(w, r, sid)

	default:
		notFound(w)
	}
}

func (h *CartHandler) handleItems(w http.ResponseWriter, r *http.Request, sid string) {
	switch r.Method {
	case http.MethodPost:
		var p cartdom.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		h.respondWith(w, sid, func(c *cartdom.Cart) error {
			return c.AddItem(p)
		})

	case http.MethodPut:
		var body struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		if strings.TrimSpace(body.ID) == "" {
			badRequest(w, "product id is required")
			return
		}
		h.respondWith(w, sid, func(c *cartdom.Cart) error {
			c.UpdateQuantity(body.ID, body.Quantity)
			return nil
		})

	case http.MethodDelete:
		id := strings.TrimSpace(r.URL.Query().Get("id"))
		if id == "" {
			badRequest(w, "product id is required")
			return
		}
		h.respondWith(w, sid, func(c *cartdom.Cart) error {
			c.RemoveItem(id)
			return nil
		})

	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) respondWith(w http.ResponseWriter, sid string, fn func(*cartdom.Cart) error) {
	snap, err := h.store.With(sid, fn)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toDTO(snap))
}
