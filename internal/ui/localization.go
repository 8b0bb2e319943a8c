package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle               = "app_title"
	KeyAddJuice               = "add_juice"
	KeyEditJuice              = "edit_juice"
	KeyName                   = "name"
	KeyDescription            = "description"
	KeyColor                  = "color"
	KeyRating                 = "rating"
	KeyNamePlaceholder        = "name_placeholder"
	KeyDescriptionPlaceholder = "description_placeholder"
	KeySave                   = "save"
	KeyCancel                 = "cancel"
	KeyDelete                 = "delete"
	KeyDeleteConfirm          = "delete_confirm"
	KeyNoJuices               = "no_juices"
	KeySettings               = "settings"
	KeyFile                   = "file"
	KeyLanguage               = "language"
	KeyDatabasePath           = "database_path"
	KeyStorageBackend         = "storage_backend"
	KeyLogLevel               = "log_level"
	KeyCacheTTL               = "cache_ttl"
	KeyBrowse                 = "browse"
	KeySettingsSaved          = "settings_saved"
	KeyRestartRequired        = "restart_required"
	KeyErrorSaving            = "error_saving"
	KeyErrorLoading           = "error_loading"
	KeyErrorDeleting          = "error_deleting"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// a translation exists for it and English otherwise.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
		if _, exists := l.texts[lang]; !exists {
			lang = "en"
		}
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

func systemLanguage() string {
	code := lang.SystemLocale().LanguageString()
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:               "Juice Tracker",
		KeyAddJuice:               "Add juice",
		KeyEditJuice:              "Edit juice",
		KeyName:                   "Name",
		KeyDescription:            "Description",
		KeyColor:                  "Color",
		KeyRating:                 "Rating",
		KeyNamePlaceholder:        "e.g. Apple",
		KeyDescriptionPlaceholder: "How did it taste?",
		KeySave:                   "Save",
		KeyCancel:                 "Cancel",
		KeyDelete:                 "Delete",
		KeyDeleteConfirm:          "Delete this juice?",
		KeyNoJuices:               "No juices yet. Tap + to add one.",
		KeySettings:               "Settings",
		KeyFile:                   "File",
		KeyLanguage:               "Language",
		KeyDatabasePath:           "Database File",
		KeyStorageBackend:         "Storage",
		KeyLogLevel:               "Log Level",
		KeyCacheTTL:               "Cache TTL (seconds)",
		KeyBrowse:                 "Browse",
		KeySettingsSaved:          "Settings saved successfully!",
		KeyRestartRequired:        "Storage changes apply after a restart.",
		KeyErrorSaving:            "Could not save juice",
		KeyErrorLoading:           "Could not load juices",
		KeyErrorDeleting:          "Could not delete juice",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:               "Дневник соков",
		KeyAddJuice:               "Добавить сок",
		KeyEditJuice:              "Изменить сок",
		KeyName:                   "Название",
		KeyDescription:            "Описание",
		KeyColor:                  "Цвет",
		KeyRating:                 "Оценка",
		KeyNamePlaceholder:        "например, Яблоко",
		KeyDescriptionPlaceholder: "Каков вкус?",
		KeySave:                   "Сохранить",
		KeyCancel:                 "Отмена",
		KeyDelete:                 "Удалить",
		KeyDeleteConfirm:          "Удалить этот сок?",
		KeyNoJuices:               "Пока нет соков. Нажмите +, чтобы добавить.",
		KeySettings:               "Настройки",
		KeyFile:                   "Файл",
		KeyLanguage:               "Язык",
		KeyDatabasePath:           "Файл базы данных",
		KeyStorageBackend:         "Хранилище",
		KeyLogLevel:               "Уровень журнала",
		KeyCacheTTL:               "Время кэша (секунды)",
		KeyBrowse:                 "Обзор",
		KeySettingsSaved:          "Настройки успешно сохранены!",
		KeyRestartRequired:        "Изменения хранилища вступят в силу после перезапуска.",
		KeyErrorSaving:            "Не удалось сохранить сок",
		KeyErrorLoading:           "Не удалось загрузить соки",
		KeyErrorDeleting:          "Не удалось удалить сок",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:               "Diário de Sucos",
		KeyAddJuice:               "Adicionar suco",
		KeyEditJuice:              "Editar suco",
		KeyName:                   "Nome",
		KeyDescription:            "Descrição",
		KeyColor:                  "Cor",
		KeyRating:                 "Avaliação",
		KeyNamePlaceholder:        "ex.: Maçã",
		KeyDescriptionPlaceholder: "Qual foi o sabor?",
		KeySave:                   "Salvar",
		KeyCancel:                 "Cancelar",
		KeyDelete:                 "Excluir",
		KeyDeleteConfirm:          "Excluir este suco?",
		KeyNoJuices:               "Nenhum suco ainda. Toque em + para adicionar.",
		KeySettings:               "Configurações",
		KeyFile:                   "Arquivo",
		KeyLanguage:               "Idioma",
		KeyDatabasePath:           "Arquivo do Banco de Dados",
		KeyStorageBackend:         "Armazenamento",
		KeyLogLevel:               "Nível de Log",
		KeyCacheTTL:               "TTL do Cache (segundos)",
		KeyBrowse:                 "Navegar",
		KeySettingsSaved:          "Configurações salvas com sucesso!",
		KeyRestartRequired:        "Mudanças de armazenamento valem após reiniciar.",
		KeyErrorSaving:            "Não foi possível salvar o suco",
		KeyErrorLoading:           "Não foi possível carregar os sucos",
		KeyErrorDeleting:          "Não foi possível excluir o suco",
	}
}
