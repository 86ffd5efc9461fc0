// Package modules exposes the application's feature registry as
// knowledge items, so searches for a capability surface the screen
// that provides it.
package modules

import (
	"context"
	"time"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// now is the extraction clock, swappable in tests.
var now = time.Now

// Module describes one application feature.
type Module struct {
	ID          string
	Name        string
	Description string
	Keywords    []string
	Enabled     bool
}

// DefaultModules returns the registry of the surrounding HR
// application's screens.
func DefaultModules() []Module {
	return []Module{
		{
			ID:          "employees",
			Name:        "إدارة الموظفين",
			Description: "إضافة الموظفين وتعديل بياناتهم الأساسية والوظيفية والاطلاع على ملفاتهم",
			Keywords:    []string{"موظف", "موظفين", "بيانات", "ملف", "employee"},
			Enabled:     true,
		},
		{
			ID:          "vacations",
			Name:        "الإجازات",
			Description: "تقديم طلبات الإجازة واعتمادها ومتابعة الأرصدة المتبقية لكل موظف",
			Keywords:    []string{"إجازة", "إجازات", "رصيد", "طلب", "vacation", "leave"},
			Enabled:     true,
		},
		{
			ID:          "salaries",
			Name:        "الرواتب",
			Description: "احتساب الرواتب الشهرية والبدلات والاستقطاعات وإصدار مسيرات الرواتب",
			Keywords:    []string{"راتب", "رواتب", "بدل", "استقطاع", "مسير", "salary", "payroll"},
			Enabled:     true,
		},
		{
			ID:          "attendance",
			Name:        "الحضور والانصراف",
			Description: "تسجيل أوقات الحضور والانصراف ومتابعة التأخير والغياب",
			Keywords:    []string{"حضور", "انصراف", "تأخير", "غياب", "بصمة", "attendance"},
			Enabled:     true,
		},
		{
			ID:          "reports",
			Name:        "التقارير",
			Description: "إصدار التقارير الدورية عن الموظفين والإجازات والرواتب وتصديرها",
			Keywords:    []string{"تقرير", "تقارير", "تصدير", "إحصائيات", "report"},
			Enabled:     true,
		},
		{
			ID:          "settings",
			Name:        "الإعدادات",
			Description: "ضبط إعدادات النظام والصلاحيات وهيكل الإدارات والأقسام",
			Keywords:    []string{"إعدادات", "صلاحيات", "أقسام", "إدارات", "settings"},
			Enabled:     true,
		},
	}
}

// Source serves a fixed module registry.
type Source struct {
	id      string
	modules []Module
	enabled bool
}

// New creates a module source over the given registry. A nil registry
// falls back to DefaultModules.
func New(id string, registry []Module) *Source {
	if registry == nil {
		registry = DefaultModules()
	}
	return &Source{id: id, modules: registry, enabled: true}
}

// ID returns the source identifier.
func (s *Source) ID() string { return s.id }

// Type returns the module source type tag.
func (s *Source) Type() domain.SourceType { return domain.SourceTypeModule }

// Enabled reports whether the source should be indexed.
func (s *Source) Enabled() bool { return s.enabled }

// SetEnabled toggles the source without unregistering it.
func (s *Source) SetEnabled(enabled bool) { s.enabled = enabled }

// Extract produces one item per enabled module.
func (s *Source) Extract(ctx context.Context) ([]domain.KnowledgeItem, error) {
	items := make([]domain.KnowledgeItem, 0, len(s.modules))
	for _, m := range s.modules {
		if !m.Enabled {
			continue
		}
		item := domain.KnowledgeItem{
			ID:         "module:" + m.ID,
			SourceType: domain.SourceTypeModule,
			Title:      m.Name,
			Content:    m.Description,
			Keywords:   m.Keywords,
			IndexedAt:  now(),
		}
		item.Metadata.Enabled = true
		items = append(items, item)
	}
	return items, nil
}
