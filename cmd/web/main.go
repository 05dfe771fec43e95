package main

import (
	"context"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Dangiteric/3DPrinting/internal/catalog"
	"github.com/Dangiteric/3DPrinting/internal/config"
	mw "github.com/Dangiteric/3DPrinting/internal/middleware"
	"github.com/Dangiteric/3DPrinting/internal/observability"
)

const loadTimeout = 15 * time.Second

var (
	cfg       *config.Config
	logger    *zap.Logger
	store     *catalog.Store
	ctaSlots  []CTAButton
	tmplCache *template.Template
)

func main() {
	var (
		addr       string
		configPath string
		catalogSrc string
	)
	flag.StringVar(&configPath, "config", "", "config file path (default storefront.yaml when present)")
	flag.StringVar(&catalogSrc, "catalog", "", "catalog document path or URL (overrides config)")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides configured port)")
	flag.Parse()

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if catalogSrc != "" {
		cfg.Catalog.Source = catalogSrc
	}
	if addr == "" {
		addr = ":" + cfg.Server.Port
	}

	logger, err = observability.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// The catalog loads exactly once per session. A failed load is terminal:
	// the storefront keeps serving with a fixed notice and never retries.
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	store = catalog.NewStore(ctx, cfg.Catalog.Source)
	cancel()
	if store.Ready() {
		logger.Info("catalog loaded",
			zap.String("source", cfg.Catalog.Source),
			zap.Int("items", len(store.Items())),
			zap.Int("picks", len(store.Picks())),
			zap.Strings("categories", store.Categories()),
		)
	} else {
		logger.Error("catalog load failed",
			zap.String("source", cfg.Catalog.Source),
			zap.Error(store.Err()),
		)
	}

	ctaSlots = buildCTASlots(cfg, store)

	if !cfg.Dev {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	logger.Info("storefront listening", zap.String("addr", addr), zap.Bool("dev", cfg.Dev))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(logger))
	r.Use(chiMid.Recoverer)
	r.Use(chiMid.Compress(5))
	r.Use(chiMid.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(cfg.Site.PublicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", ShopHandler)
	r.Get("/shop/grid", ShopGridFrag)
	r.Get("/catalog.json", CatalogDocHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(cfg.Site.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", cfg.Site.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func templates(w http.ResponseWriter) *template.Template {
	if !cfg.Dev {
		if tmplCache == nil {
			http.Error(w, "template not initialized", http.StatusInternalServerError)
			return nil
		}
		return tmplCache
	}
	// Dev mode reparses on every request.
	tc, err := parseTemplates()
	if err != nil {
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return nil
	}
	return tc
}

// render executes the base layout.
func render(w http.ResponseWriter, r *http.Request, data any) {
	t := templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderFragment executes a single named template for htmx swaps.
func renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}
