package main

import (
	"flag"

	"github.com/DRSN-tech/visual-search/internal/app"
)

func main() {
	limit := flag.Int("limit", 0, "максимум записей каталога за прогон, 0 — без ограничения")
	flag.Parse()

	app.RunIndexer(*limit)
}
