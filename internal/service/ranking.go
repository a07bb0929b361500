package service

import (
	"sort"
	"strings"

	"github.com/selimacar/studiofoto-backend/internal/models"
)

// İlgili içerik önerileri için saf skorlama. Aynı girdi her zaman aynı
// sıralı çıktıyı üretir; hiçbir durum tutulmaz.

const (
	scoreCategoryMatch = 5
	scoreTagMatch      = 2
	scoreTitleWord     = 1
	minTitleWordLen    = 4 // 3 karakterden uzun kelimeler sayılır
)

// RankScore, adayın referansa göre alaka puanını hesaplar:
// aynı kategori +5, ortak her tag +2, başlıklarda ortak geçen
// 3 karakterden uzun her kelime +1 (büyük/küçük harf duyarsız).
func RankScore(candidate, reference models.RankItem) int {
	score := 0

	if candidate.Category != "" && candidate.Category == reference.Category {
		score += scoreCategoryMatch
	}

	refTags := make(map[string]bool, len(reference.Tags))
	for _, tag := range reference.Tags {
		refTags[tag] = true
	}
	seenTags := make(map[string]bool, len(candidate.Tags))
	for _, tag := range candidate.Tags {
		if refTags[tag] && !seenTags[tag] {
			score += scoreTagMatch
			seenTags[tag] = true
		}
	}

	refWords := titleWords(reference.Title)
	for word := range titleWords(candidate.Title) {
		if refWords[word] {
			score += scoreTitleWord
		}
	}

	return score
}

// Rank, referansın kendisini eleyip kalan adayları puana göre azalan sırada
// döner. Eşit puanlar için orijinal sıra korunur (stable sort), ilk `limit`
// öğe döner.
func Rank(candidates []models.RankItem, reference models.RankItem, limit int) []models.RankItem {
	type scored struct {
		item  models.RankItem
		score int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == reference.ID {
			continue
		}
		ranked = append(ranked, scored{item: c, score: RankScore(c, reference)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	result := make([]models.RankItem, len(ranked))
	for i, s := range ranked {
		result[i] = s.item
	}
	return result
}

func titleWords(title string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if len(word) >= minTitleWordLen {
			words[word] = true
		}
	}
	return words
}
