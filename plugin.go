package zeit

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/oarkflow/squealx"

	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/fixtures"
	"github.com/oarkflow/zeit/pkg/http/routes"
	"github.com/oarkflow/zeit/pkg/libs"
	"github.com/oarkflow/zeit/pkg/models"
	"github.com/oarkflow/zeit/pkg/objects"
	"github.com/oarkflow/zeit/pkg/storage"
	"github.com/oarkflow/zeit/pkg/utils"
	"github.com/oarkflow/zeit/pkg/views"
)

//go:embed views
var Assets embed.FS

type Plugin struct {
	App     *fiber.App
	Prefix  string
	Assets  fs.FS
	DB      *squealx.DB
	Config  *libs.Config
	Data    contracts.Provider
	Reload  bool
	manager *libs.Manager
	store   *storage.DatabaseStorage
	cancel  context.CancelFunc
}

type Option func(*Plugin)

func WithPrefix(prefix string) Option {
	return func(p *Plugin) {
		p.Prefix = prefix
	}
}

func WithApp(app *fiber.App) Option {
	return func(p *Plugin) {
		p.App = app
	}
}

// WithDB stores the gate audit trail in db instead of opening the
// configured database.
func WithDB(db *squealx.DB) Option {
	return func(p *Plugin) {
		p.DB = db
	}
}

func WithConfig(cfg *libs.Config) Option {
	return func(p *Plugin) {
		p.Config = cfg
	}
}

// WithProvider replaces the built-in fixture dataset.
func WithProvider(data contracts.Provider) Option {
	return func(p *Plugin) {
		p.Data = data
	}
}

// WithTemplateReload re-parses the templates on every render.
func WithTemplateReload(reload bool) Option {
	return func(p *Plugin) {
		p.Reload = reload
	}
}

func NewPluginWithOptions(opts ...Option) *Plugin {
	sub, err := fs.Sub(Assets, "views")
	if err != nil {
		panic(err)
	}
	plugin := &Plugin{Prefix: "/", Assets: sub}
	for _, opt := range opts {
		opt(plugin)
	}
	if plugin.Prefix == "" {
		plugin.Prefix = "/"
	}

	engine := html.NewFileSystem(http.FS(plugin.Assets), ".html")
	engine.Reload(plugin.Reload)
	engine.AddFuncMap(map[string]any{
		"unescape": func(s string) template.HTML {
			return template.HTML(s)
		},
		"uris": func() map[string]string {
			return utils.GetURIs()
		},
	})
	engine.AddFuncMap(views.FuncMap())
	objects.ViewEngine = engine
	if objects.Layout == "" {
		objects.Layout = "layouts/main"
	}
	return plugin
}

// Register opens the audit storage, builds the gate manager and mounts the
// routes on the plugin's app.
func (p *Plugin) Register() error {
	if p.Config == nil {
		p.Config = libs.LoadConfig()
	}
	cfg := p.Config
	if err := cfg.Gate.Validate(); err != nil {
		return err
	}
	db := p.DB
	if db == nil {
		opened, err := storage.Open(cfg.DB, cfg.DSN)
		if err != nil {
			return err
		}
		db = opened
	}
	store, err := storage.NewDatabaseStorage(db)
	if err != nil {
		return fmt.Errorf("initialize audit storage: %w", err)
	}
	if cfg.Gate.Secret == "" && len(cfg.Gate.ProtectedViews) > 0 {
		log.Printf("gate secret is empty, protected views (%s) stay locked", strings.Join(cfg.Gate.ProtectedViews, ", "))
	}
	if p.Data == nil {
		p.Data = fixtures.New(nil)
	}
	p.store = store
	p.manager = libs.NewManager(&cfg.Gate, views.Describe)
	objects.Store = store
	objects.Gates = p.manager
	objects.Data = p.Data
	objects.Identity = models.Identity{
		AppName:  cfg.AppName,
		UserName: cfg.UserName,
		UserRole: cfg.UserRole,
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.manager.StartCleanup(ctx, time.Minute)

	if p.App != nil {
		p.App.Use(strings.TrimRight(p.Prefix, "/")+utils.StaticURI, filesystem.New(filesystem.Config{
			Root:       http.FS(p.Assets),
			PathPrefix: "static",
			MaxAge:     3600,
		}))
		routes.Setup(p.Prefix, p.App, cfg)
	}
	return nil
}

func (p *Plugin) Name() string {
	return "Zeit"
}

func (p *Plugin) Close() error {
	if p.cancel != nil {
		p.cancel()
	}
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}
