// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	fsrepo "fashionistic/internal/adapters/out/firestore"
	gcsrepo "fashionistic/internal/adapters/out/gcs"
	mailout "fashionistic/internal/adapters/out/mail"

	httpin "fashionistic/internal/adapters/in/http"
	usecase "fashionistic/internal/application/usecase"
	cartdom "fashionistic/internal/domain/cart"
	appcfg "fashionistic/internal/infra/config"
)

// Container owns external clients and the wired usecases.
//
// Firestore/GCS are strict (init error aborts). Firebase Auth, Secret
// Manager and SendGrid are best-effort: a warning is logged and the
// dependent surface (admin routes, contact mail) is disabled.
type Container struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client

	// Wired application objects
	ArtworkUC *usecase.ArtworkUsecase
	MediaUC   *usecase.MediaUsecase
	InquiryUC *usecase.InquiryUsecase
	CartStore *cartdom.Store
}

// NewContainer initializes clients and wires repositories and usecases.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()

	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("di: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	c := &Container{
		Config:    cfg,
		ProjectID: projectID,
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di] using credentials file for GCP clients")
	} else {
		log.Printf("[di] using Application Default Credentials")
	}

	// Firestore (strict)
	fsClient, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, errors.New("di: firestore.NewClient failed: " + err.Error())
	}
	c.Firestore = fsClient

	// GCS (strict)
	gcsClient, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		c.Close()
		return nil, errors.New("di: storage.NewClient failed: " + err.Error())
	}
	c.GCS = gcsClient

	// Firebase Auth (best-effort; admin routes stay unmounted without it)
	fbProject := strings.TrimSpace(cfg.FirebaseProjectID)
	if fbProject == "" {
		fbProject = projectID
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: fbProject}, clientOpts...)
	if err != nil {
		log.Printf("[di] WARN: firebase.NewApp failed: %v (admin routes disabled)", err)
	} else {
		c.FirebaseApp = app
		if auth, aerr := app.Auth(ctx); aerr != nil {
			log.Printf("[di] WARN: firebase Auth init failed: %v (admin routes disabled)", aerr)
		} else {
			c.FirebaseAuth = auth
		}
	}

	// Secret Manager (best-effort; only needed for the SendGrid key)
	sm, err := secretmanager.NewClient(ctx, clientOpts...)
	if err != nil {
		log.Printf("[di] WARN: secretmanager.NewClient failed: %v (secret-backed settings disabled)", err)
		sm = nil
	}
	c.SecretManager = sm

	// Repositories
	artworkRepo := fsrepo.NewArtworkRepositoryFS(fsClient, cfg.ArtworkCollection)
	mediaRepo := fsrepo.NewMediaRepositoryFS(fsClient, cfg.ArtworkCollection)
	inquiryRepo := fsrepo.NewInquiryRepositoryFS(fsClient, cfg.InquiryCollection)
	assets := gcsrepo.NewAssetRepositoryGCS(gcsClient, cfg.AssetBucket, cfg.AssetPrefix)
	if strings.TrimSpace(cfg.AssetBucket) == "" {
		log.Printf("[di] WARN: ASSET_BUCKET is empty (uploads will fail)")
	}

	// Contact mailer (best-effort)
	mailer := buildContactMailer(ctx, cfg, sm, projectID)

	// Usecases
	c.ArtworkUC = usecase.NewArtworkUsecase(artworkRepo, assets)
	c.MediaUC = usecase.NewMediaUsecase(mediaRepo, assets)
	c.InquiryUC = usecase.NewInquiryUsecase(inquiryRepo, mailer)
	c.CartStore = cartdom.NewStore()

	return c, nil
}

// RouterDeps exposes the wired objects to the HTTP router.
func (c *Container) RouterDeps() httpin.RouterDeps {
	deps := httpin.RouterDeps{
		ArtworkUC: c.ArtworkUC,
		MediaUC:   c.MediaUC,
		InquiryUC: c.InquiryUC,
		CartStore: c.CartStore,
	}
	if c.FirebaseAuth != nil {
		deps.FirebaseAuth = c.FirebaseAuth
	}
	return deps
}

// Close releases owned clients.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.SecretManager != nil {
		_ = c.SecretManager.Close()
	}
}

// buildContactMailer resolves the SendGrid key (env first, Secret Manager
// fallback) and assembles the contact mailer. Returns nil when mail is not
// configured; inquiry storage still works without it.
func buildContactMailer(ctx context.Context, cfg *appcfg.Config, sm *secretmanager.Client, projectID string) *mailout.ContactMailer {
	if strings.TrimSpace(cfg.ContactFromEmail) == "" || strings.TrimSpace(cfg.ContactToEmail) == "" {
		log.Printf("[di] contact mail not configured (CONTACT_FROM_EMAIL/CONTACT_TO_EMAIL empty)")
		return nil
	}

	key := strings.TrimSpace(cfg.SendGridAPIKey)
	if key == "" && sm != nil {
		v, err := accessSecret(ctx, sm, projectID, cfg.SendGridSecretName)
		if err != nil {
			log.Printf("[di] WARN: sendgrid key secret lookup failed: %v (contact mail disabled)", err)
		} else {
			key = v
		}
	}
	if key == "" {
		log.Printf("[di] contact mail disabled (no SendGrid key)")
		return nil
	}

	return mailout.NewContactMailer(mailout.NewSendGridClient(key), cfg.ContactFromEmail, cfg.ContactToEmail)
}
