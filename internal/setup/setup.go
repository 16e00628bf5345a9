package setup

import (
	"fmt"

	"github.com/shelfmates/shelfmates/internal/handler"
	"github.com/shelfmates/shelfmates/internal/idgen"
	"github.com/shelfmates/shelfmates/internal/recommend"
	"github.com/shelfmates/shelfmates/internal/service"
	"github.com/shelfmates/shelfmates/internal/storage"
	"github.com/shelfmates/shelfmates/internal/storage/memory"
	"github.com/shelfmates/shelfmates/internal/storage/mongo"
	"github.com/shelfmates/shelfmates/internal/utils"
	"github.com/shelfmates/shelfmates/shared/config"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage storage.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	var store storage.Storage
	switch cfg.Public.StorageBackend {
	case "mongo":
		s, err := mongo.New(cfg)
		if err != nil {
			return nil, err
		}
		store = s
	case "memory":
		store = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage_backend %q", cfg.Public.StorageBackend)
	}

	ids := idgen.New()
	bodyValidator := utils.NewBodyValidator(cfg.Public.MaxBodyLen)
	nameValidator := utils.NewNameValidator()
	tagValidator := utils.NewTagValidator()
	recommender := recommend.NewSharedGenre(store, 0)

	commentary := service.NewCommentary(store, ids, bodyValidator, tagValidator)
	library := service.NewLibrary(store, ids, nameValidator)
	profiles := service.NewProfiles(store, nameValidator, tagValidator)
	matching := service.NewMatching(store, ids, recommender)
	messaging := service.NewMessaging(store, ids, bodyValidator)

	h := handler.New(commentary, library, profiles, matching, messaging, store, cfg)

	return &Dependencies{
		Storage: store,
		Handler: h,
		Config:  cfg,
	}, nil
}
