package domain

// Service процедура из статического каталога клиники
type Service struct {
	ID       string
	Name     string
	Price    float64
	Currency string
}

// Catalog статический каталог процедур
// Порядок элементов совпадает с порядком отображения
type Catalog struct {
	services []Service
	byID     map[string]Service
}

// NewCatalog создает каталог; при повторе ID побеждает первая запись
func NewCatalog(services []Service) *Catalog {
	c := &Catalog{
		services: make([]Service, 0, len(services)),
		byID:     make(map[string]Service, len(services)),
	}
	for _, s := range services {
		if _, exists := c.byID[s.ID]; exists {
			continue
		}
		c.services = append(c.services, s)
		c.byID[s.ID] = s
	}
	return c
}

// DefaultServices каталог клиники по умолчанию
func DefaultServices() []Service {
	return []Service{
		{ID: "lips", Name: "Modelowanie ust", Price: 700, Currency: "PLN"},
		{ID: "botox", Name: "Toksyna botulinowa", Price: 650, Currency: "PLN"},
		{ID: "meso", Name: "Mezoterapia", Price: 400, Currency: "PLN"},
		{ID: "fillers", Name: "Wypełniacze", Price: 900, Currency: "PLN"},
	}
}

// Get возвращает процедуру по ID
func (c *Catalog) Get(id string) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Has проверяет наличие процедуры в каталоге
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// List возвращает копию списка процедур
func (c *Catalog) List() []Service {
	result := make([]Service, len(c.services))
	copy(result, c.services)
	return result
}
