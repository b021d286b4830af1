package main

import (
	"github.com/DRSN-tech/visual-search/internal/app"
)

// @title			Visual Search API
// @version		1.0
// @description	Поиск похожих товаров каталога по изображению интерьера
// @BasePath		/api/v1
func main() {
	app.Run()
}
