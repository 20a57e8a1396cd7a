// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"fashionistic/internal/adapters/in/http/handlers"
	"fashionistic/internal/adapters/in/http/middleware"
	usecase "fashionistic/internal/application/usecase"
	cartdom "fashionistic/internal/domain/cart"
)

// RouterDeps collects everything injected from main via the DI container.
type RouterDeps struct {
	ArtworkUC *usecase.ArtworkUsecase
	MediaUC   *usecase.MediaUsecase
	InquiryUC *usecase.InquiryUsecase
	CartStore *cartdom.Store

	// FirebaseAuth guards the /admin/ surface. When nil the admin routes
	// are not mounted at all (public storefront still works).
	FirebaseAuth middleware.TokenVerifier
}

// NewRouter sets up HTTP routing for the storefront and the admin dashboard.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Public storefront reads
	if deps.ArtworkUC != nil {
		mux.Handle("/artworks", handlers.NewArtworkHandler(deps.ArtworkUC))
	}
	if deps.MediaUC != nil {
		mux.Handle("/slider", handlers.NewSliderHandler(deps.MediaUC))
		mux.Handle("/videos", handlers.NewVideoHandler(deps.MediaUC))
	}
	if deps.InquiryUC != nil {
		mux.Handle("/contact", handlers.NewInquiryHandler(deps.InquiryUC))
	}
	if deps.CartStore != nil {
		cart := handlers.NewCartHandler(deps.CartStore)
		mux.Handle("/cart", cart)
		mux.Handle("/cart/", cart)
	}

	// Admin surface: Firebase ID token required; any authenticated account
	// has full rights (no role model).
	if deps.FirebaseAuth != nil {
		authmw := &middleware.AuthMiddleware{FirebaseAuth: deps.FirebaseAuth}

		if deps.ArtworkUC != nil {
			admin := handlers.NewArtworkAdminHandler(deps.ArtworkUC)
			mux.Handle("/admin/artworks", authmw.Handler(admin))
			mux.Handle("/admin/artworks/", authmw.Handler(admin))
		}
		if deps.MediaUC != nil {
			admin := handlers.NewMediaAdminHandler(deps.MediaUC)
			mux.Handle("/admin/slider", authmw.Handler(admin))
			mux.Handle("/admin/slider/", authmw.Handler(admin))
			mux.Handle("/admin/videos", authmw.Handler(admin))
			mux.Handle("/admin/videos/", authmw.Handler(admin))
		}
		if deps.ArtworkUC != nil && deps.MediaUC != nil {
			mux.Handle("/admin/stats", authmw.Handler(handlers.NewStatsHandler(deps.ArtworkUC, deps.MediaUC)))
		}
	}

	return middleware.Recover(mux)
}
