// Package i18n translates the user-facing strings of the timer window and
// tray menu.
package i18n

import (
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Study Timer": {
		"pt": "Temporizador de estudo",
		"es": "Temporizador de estudio",
		"ru": "Таймер учёбы",
	},
	"Now playing:\nStudy mode": {
		"pt": "Tocando agora:\nModo estudo",
		"es": "Reproduciendo:\nModo estudio",
		"ru": "Сейчас:\nРежим учёбы",
	},
	"Now playing:\nBreak mode": {
		"pt": "Tocando agora:\nModo pausa",
		"es": "Reproduciendo:\nModo descanso",
		"ru": "Сейчас:\nРежим перерыва",
	},
	"Break time!": {
		"pt": "Hora da pausa!",
		"es": "¡Hora del descanso!",
		"ru": "Время перерыва!",
	},
	"Time's up!": {
		"pt": "Tempo esgotado!",
		"es": "¡Se acabó el tiempo!",
		"ru": "Время вышло!",
	},
	"Break is over!\nReady to study?": {
		"pt": "A pausa acabou!\nPronto para estudar?",
		"es": "¡Se acabó el descanso!\n¿Listo para estudiar?",
		"ru": "Перерыв окончен!\nГотовы учиться?",
	},
	"New study session": {
		"pt": "Nova sessão de estudo",
		"es": "Nueva sesión de estudio",
		"ru": "Новая сессия",
	},
	"Break timer": {
		"pt": "Pausa",
		"es": "Descanso",
		"ru": "Перерыв",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Show timer": {
		"pt": "Mostrar timer",
		"es": "Mostrar temporizador",
		"ru": "Показать таймер",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Study": {
		"pt": "Estudo",
		"es": "Estudio",
		"ru": "Учёба",
	},
	"Break": {
		"pt": "Pausa",
		"es": "Descanso",
		"ru": "Перерыв",
	},
	"paused": {
		"pt": "pausado",
		"es": "en pausa",
		"ru": "пауза",
	},
	"finished": {
		"pt": "concluído",
		"es": "terminado",
		"ru": "завершено",
	},
}

// Setup selects the display language. An empty preference falls back to the
// first system locale; unknown languages fall back to English.
func Setup(preferred string) string {
	selected := Normalize(preferred)
	if strings.TrimSpace(preferred) == "" {
		selected = "en"
		if userLocales, err := locale.GetLocales(); err == nil && len(userLocales) > 0 {
			selected = Normalize(userLocales[0])
		}
	}

	mu.Lock()
	lang = selected
	mu.Unlock()
	return selected
}

// Normalize maps a locale such as "pt_BR" or "es-419" to a supported language.
func Normalize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(value, "pt"):
		return "pt"
	case strings.HasPrefix(value, "es"):
		return "es"
	case strings.HasPrefix(value, "ru"):
		return "ru"
	default:
		return "en"
	}
}

// T returns the translation of key, or key itself.
func T(key string) string {
	mu.RLock()
	current := lang
	mu.RUnlock()
	if translated, ok := translations[key][current]; ok {
		return translated
	}
	return key
}

// GetLang returns the selected language.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
