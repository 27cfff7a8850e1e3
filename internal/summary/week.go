package summary

import (
	"math"
	"time"
)

// WeekWindow - Referans tarihi içeren Pazartesi–Pazar haftasının sınırları
// (UTC takvim günü olarak).
func WeekWindow(ref time.Time) (time.Time, time.Time) {
	ref = ref.UTC()
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	// time.Weekday'de Pazar=0; Pazartesi başlangıçlı offset'e çevir
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start, end
}

// HoursRounded - Dakikayı 1 ondalık basamaklı saate çevirir.
func HoursRounded(minutes int) float64 {
	return math.Round(float64(minutes)/60.0*10) / 10
}

// NetMinutes - Net çalışma = toplam - mola, sıfırın altına düşmez.
func NetMinutes(workMinutes, breakMinutes int) int {
	net := workMinutes - breakMinutes
	if net < 0 {
		return 0
	}
	return net
}
