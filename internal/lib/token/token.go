package token

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const (
	alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	segmentLength = 13
)

// New генерирует непрозрачный идентификатор вида
// <base36 unix-millis>-<seg>-<seg>-<seg>, где seg — 13 случайных base36 символов.
// Случайность берётся из crypto/rand, но формат остаётся демонстрационным:
// это генератор уникальных id, а не криптографический credential.
// Используется и для токена сессии, и для id заказа
func New() string {
	parts := []string{
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		segment(),
		segment(),
		segment(),
	}
	return strings.Join(parts, "-")
}

func segment() string {
	buf := make([]byte, segmentLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на поддерживаемых платформах не возвращает ошибок
		panic("token: failed to read random bytes: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
