package main

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"grove/internal/cache"
	"grove/internal/config"
	"grove/internal/db"
	"grove/internal/logger"
	"grove/internal/middleware"
	"grove/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db.Init(cfg)

	feedCache, err := cache.New(500)
	if err != nil {
		logger.Sugar.Fatalf("Failed to create feed cache: %v", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()

	// Sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("grove_session", store))

	// Templates via multitemplate: every view is assembled with the layout
	r.HTMLRender = loadTemplates("./web/templates")

	// Static assets and uploaded media
	r.Static("/static", "./web/static")
	r.Static("/media", cfg.MediaRoot)

	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r, cfg, feedCache)

	logger.Sugar.Infof("grove server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Sugar.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+1)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
		"timeAgo": func(t time.Time) string {
			seconds := int(time.Since(t).Seconds())
			switch {
			case seconds < 60:
				return fmt.Sprintf("%ds ago", seconds)
			case seconds < 3600:
				return fmt.Sprintf("%dm ago", seconds/60)
			case seconds < 86400:
				return fmt.Sprintf("%dh ago", seconds/3600)
			default:
				return fmt.Sprintf("%dd ago", seconds/86400)
			}
		},
	}

	views := []string{
		"index.html",
		"group.html",
		"profile.html",
		"follow.html",
		"post/detail.html",
		"post/form.html",
		"auth/login.html",
		"auth/signup.html",
		"404.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(templatesDir+"/views/"+view)...)
	}

	return r
}
