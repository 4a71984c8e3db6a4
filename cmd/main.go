package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/culiutudousi/time-reminder/internal/config"
	"github.com/culiutudousi/time-reminder/internal/storage"
	"github.com/culiutudousi/time-reminder/internal/ui"
)

func main() {
	// 读取配置，文件不存在时使用默认值
	configPath, err := config.DefaultPath()
	if err != nil {
		log.Fatal(err)
	}
	configManager, err := config.NewManager(configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg := configManager.GetConfig()

	// 历史记录默认关闭
	var deps ui.Deps
	if cfg.History.Enabled {
		db, err := storage.NewDatabase(cfg.History.Path)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("close history: %v", err)
			}
		}()
		deps.History = db
	}

	myApp := app.NewWithID("io.github.culiutudousi.timereminder")
	mainWindow := ui.NewMainWindow(myApp, cfg, deps)
	mainWindow.Show()
}
