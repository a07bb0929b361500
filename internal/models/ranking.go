package models

// RankItem, ilgili içerik önerileri için skorlanacak öğenin
// alaka sinyallerini taşır. Herhangi bir entity'den türetilebilir.
type RankItem struct {
	ID       uint     `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}
