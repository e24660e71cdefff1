// Package i18n translates interface labels. The language comes from the
// runtime config or the system locale.
package i18n

import (
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"

	"studydash/internal/core/model"
	"studydash/internal/logging"
)

var (
	mu     sync.RWMutex
	lang   = "en"
	region string
)

var supported = []string{"en", "pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Pomodoro":    {"pt": "Pomodoro", "es": "Pomodoro", "ru": "Помодоро"},
	"Time":        {"pt": "Hora", "es": "Hora", "ru": "Время"},
	"Timer":       {"pt": "Cronômetro", "es": "Temporizador", "ru": "Таймер"},
	"Start":       {"pt": "Iniciar", "es": "Iniciar", "ru": "Старт"},
	"Pause":       {"pt": "Pausar", "es": "Pausar", "ru": "Пауза"},
	"Reset":       {"pt": "Resetar", "es": "Reiniciar", "ru": "Сброс"},
	"Set":         {"pt": "Definir", "es": "Fijar", "ru": "Задать"},
	"Cancel":      {"pt": "Cancelar", "es": "Cancelar", "ru": "Отмена"},
	"Close":       {"pt": "Fechar", "es": "Cerrar", "ru": "Закрыть"},
	"Save":        {"pt": "Salvar", "es": "Guardar", "ru": "Сохранить"},
	"Quit":        {"pt": "Sair", "es": "Salir", "ru": "Выход"},
	"Show":        {"pt": "Mostrar", "es": "Mostrar", "ru": "Показать"},
	"Preferences": {"pt": "Preferências", "es": "Preferencias", "ru": "Настройки"},
	"Work":        {"pt": "Foco", "es": "Trabajo", "ru": "Работа"},
	"Short Break": {"pt": "Pausa Curta", "es": "Descanso Corto", "ru": "Короткий перерыв"},
	"Long Break":  {"pt": "Pausa Longa", "es": "Descanso Largo", "ru": "Длинный перерыв"},
	"Minutes":     {"pt": "Minutos", "es": "Minutos", "ru": "Минуты"},
	"Seconds":     {"pt": "Segundos", "es": "Segundos", "ru": "Секунды"},
	"Sound":       {"pt": "Som", "es": "Sonido", "ru": "Звук"},
	"Volume":      {"pt": "Volume", "es": "Volumen", "ru": "Громкость"},
	"Test sound":  {"pt": "Testar som", "es": "Probar sonido", "ru": "Проверить звук"},
	"Timezone":    {"pt": "Fuso horário", "es": "Zona horaria", "ru": "Часовой пояс"},
	"Add task":    {"pt": "Adicionar tarefa", "es": "Añadir tarea", "ru": "Добавить задачу"},
	"Begin focus": {"pt": "Começar foco", "es": "Empezar enfoque", "ru": "Начать фокус"},
	"Ready":       {"pt": "Pronto", "es": "Listo", "ru": "Готово"},
	"Switch mode": {"pt": "Trocar modo", "es": "Cambiar modo", "ru": "Сменить режим"},
	"Show dashboard": {
		"pt": "Mostrar painel",
		"es": "Mostrar panel",
		"ru": "Показать панель",
	},
	"What will you work on?": {
		"pt": "No que você vai trabalhar?",
		"es": "¿En qué vas a trabajar?",
		"ru": "Над чем будете работать?",
	},
	"Completed sessions": {"pt": "Sessões concluídas", "es": "Sesiones completadas", "ru": "Завершённые сессии"},
	"Spoken text":        {"pt": "Texto falado", "es": "Texto hablado", "ru": "Текст для озвучки"},
	"Custom sound file":  {"pt": "Arquivo de som", "es": "Archivo de sonido", "ru": "Файл звука"},
	"Clock style":        {"pt": "Estilo do relógio", "es": "Estilo de reloj", "ru": "Вид часов"},
	"Time format":        {"pt": "Formato da hora", "es": "Formato de hora", "ru": "Формат времени"},
	"Pause when idle (minutes, 0 = off)": {
		"pt": "Pausar quando inativo (minutos, 0 = nunca)",
		"es": "Pausar si inactivo (minutos, 0 = nunca)",
		"ru": "Пауза при простое (минуты, 0 = выкл.)",
	},
	"Launch at login": {"pt": "Iniciar com o sistema", "es": "Iniciar con el sistema", "ru": "Запускать при входе"},
}

// Init selects the language. A non-empty override wins over the system
// locale; unsupported languages fall back to English.
func Init(override string) string {
	var detected string
	if override = strings.TrimSpace(override); override != "" {
		detected = override
	} else if locales, err := locale.GetLocales(); err != nil {
		logging.Warn(logging.CatUI, "could not read system locale", "error", err)
	} else if len(locales) > 0 {
		detected = locales[0]
	}

	language, country := Parse(detected)
	mu.Lock()
	lang, region = language, country
	mu.Unlock()
	logging.Debug(logging.CatUI, "language selected", "lang", language, "region", country, "from", detected)
	return language
}

// Parse splits a locale tag such as "pt_BR.UTF-8" or "en-US" into a
// supported language and an upper-case region.
func Parse(tag string) (string, string) {
	tag = strings.SplitN(tag, ".", 2)[0]
	parts := strings.FieldsFunc(tag, func(r rune) bool { return r == '_' || r == '-' })
	if len(parts) == 0 {
		return "en", ""
	}
	language := strings.ToLower(parts[0])
	country := ""
	if len(parts) > 1 {
		country = strings.ToUpper(parts[len(parts)-1])
	}
	for _, candidate := range supported {
		if candidate == language {
			return language, country
		}
	}
	return "en", country
}

// T translates key into the selected language.
func T(key string) string {
	mu.RLock()
	current := lang
	mu.RUnlock()
	if translated, ok := translations[key][current]; ok {
		return translated
	}
	return key
}

// Lang returns the selected language code.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "PH": true, "IN": true, "PK": true, "EG": true,
}

// DefaultClockFormat returns the conventional clock format for the locale.
func DefaultClockFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	if twelveHourRegions[region] {
		return model.Format12h
	}
	return model.Format24h
}

// ModeLabel returns the translated name of a Pomodoro mode.
func ModeLabel(mode model.Mode) string {
	switch mode {
	case model.ModeShortBreak:
		return T("Short Break")
	case model.ModeLongBreak:
		return T("Long Break")
	default:
		return T("Work")
	}
}
