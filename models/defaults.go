package models

// DefaultCategories returns a fresh copy of the built-in taxonomy. The
// catalog falls back to it when the persisted category list is missing or
// corrupt, and the restore-defaults operation replaces the whole list with it.
//
// The slice is rebuilt on every call so callers can mutate their copy freely.
func DefaultCategories() []Category {
	return []Category{
		{ID: AllCategoryID, Name: "Всі", Icon: "fa-boxes", Color: "#44d62c", Tags: []string{}, IsDefault: true, IsLocked: true},
		{ID: "toys", Name: "Іграшки", Icon: "fa-gamepad", Color: "#44d62c", Tags: []string{"іграшки", "ігри", "гра", "робот", "трансформер"}, IsDefault: true, IsLocked: true},
		{ID: "decor", Name: "Декор", Icon: "fa-palette", Color: "#44d62c", Tags: []string{"декор", "мистецтво", "ваза", "рамка", "суккулент", "рослини"}, IsDefault: true, IsLocked: true},
		{ID: "tools", Name: "Інструменти", Icon: "fa-tools", Color: "#44d62c", Tags: []string{"інструменти", "організація", "майстерня"}, IsDefault: true, IsLocked: true},
		{ID: "gifts", Name: "Подарунки", Icon: "fa-gift", Color: "#44d62c", Tags: []string{"подарунки", "подарунок"}, IsDefault: true, IsLocked: true},
		{ID: "tech", Name: "Техніка", Icon: "fa-robot", Color: "#44d62c", Tags: []string{"техніка", "гаджет", "ноутбук", "геймінг"}, IsDefault: true, IsLocked: true},
		{ID: "puzzles", Name: "Головоломки", Icon: "fa-puzzle-piece", Color: "#44d62c", Tags: []string{"головоломки", "головоломка"}, IsDefault: true, IsLocked: true},
		{ID: "home", Name: "Для дому", Icon: "fa-home", Color: "#44d62c", Tags: []string{"дім", "домашній", "побут", "офіс"}, IsDefault: true, IsLocked: true},
		{ID: "art", Name: "Мистецтво", Icon: "fa-paint-brush", Color: "#44d62c", Tags: []string{"мистецтво", "арт", "творчість"}, IsDefault: true, IsLocked: true},
		{ID: "accessories", Name: "Аксесуари", Icon: "fa-headphones", Color: "#44d62c", Tags: []string{"аксесуар", "навушники", "ліхтарик", "ключі"}, IsDefault: true, IsLocked: true},
	}
}

// FallbackModels returns the built-in sample catalog used when no persisted
// model list exists and none can be loaded.
func FallbackModels() []Model {
	return []Model{
		{
			ID:          "1",
			Title:       `Арт-ваза "Хвиля"`,
			Author:      "CreativePrints",
			Image:       "https://images.unsplash.com/photo-1589939705388-13b77b3a5d65?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Description: "Елегантна ваза з унікальним візерунком хвилі.",
			PrintTime:   "8 годин",
			Weight:      "145 г",
			Difficulty:  "Середня",
			Downloads:   "2.5K",
			Dimensions:  "120x120x180 мм",
			Formats:     []string{"STL", "3MF"},
			Tags:        []string{"декор", "ваза", "мистецтво", "сучасний", "арт"},
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Підставка для телефону",
			Author:      "GadgetLab",
			Image:       "https://images.unsplash.com/photo-1581094794329-c8112a89af12?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Description: "Ергономічна підставка з регульованим кутом нахилу.",
			PrintTime:   "3 години",
			Weight:      "65 г",
			Difficulty:  "Легка",
			Downloads:   "8.7K",
			Dimensions:  "80x60x40 мм",
			Formats:     []string{"STL", "STEP"},
			Tags:        []string{"гаджет", "стіл", "організація", "аксесуар", "техніка"},
			Featured:    true,
		},
	}
}
