package main

import (
	"github.com/chokun100/coffeeshop/internal/app"
	"github.com/chokun100/coffeeshop/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
