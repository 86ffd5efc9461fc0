// Package help serves the built-in Arabic help topics that ship with
// the application, so "how do I" questions can be answered offline.
package help

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

// Topic is one built-in help entry.
type Topic struct {
	ID       string
	Title    string
	Body     string
	Keywords []string
}

// BuiltinTopics returns the help content compiled into the binary.
func BuiltinTopics() []Topic {
	return []Topic{
		{
			ID:    "add-employee",
			Title: "كيفية إضافة موظف جديد",
			Body: "من شاشة إدارة الموظفين اضغط زر إضافة، ثم أدخل البيانات الأساسية " +
				"للموظف مثل الاسم والرقم الوظيفي وتاريخ التعيين، واحفظ السجل.",
			Keywords: []string{"إضافة", "موظف", "جديد", "تعيين"},
		},
		{
			ID:    "request-vacation",
			Title: "كيفية تقديم طلب إجازة",
			Body: "من شاشة الإجازات اختر نوع الإجازة وحدد تاريخ البداية والنهاية، " +
				"ثم أرسل الطلب ليظهر لدى المدير المباشر للاعتماد.",
			Keywords: []string{"طلب", "إجازة", "اعتماد", "تقديم"},
		},
		{
			ID:    "vacation-balance",
			Title: "الاستعلام عن رصيد الإجازات",
			Body: "يظهر رصيد الإجازات المتبقي لكل موظف في أعلى شاشة الإجازات، " +
				"ويتم تحديثه تلقائيا بعد اعتماد كل طلب.",
			Keywords: []string{"رصيد", "إجازة", "استعلام", "متبقي"},
		},
		{
			ID:    "run-payroll",
			Title: "كيفية إصدار مسير الرواتب",
			Body: "من شاشة الرواتب اختر الشهر المطلوب ثم اضغط احتساب، وراجع البدلات " +
				"والاستقطاعات قبل الاعتماد النهائي وإصدار المسير.",
			Keywords: []string{"مسير", "رواتب", "احتساب", "إصدار"},
		},
		{
			ID:    "export-report",
			Title: "كيفية تصدير التقارير",
			Body: "من شاشة التقارير اختر التقرير المطلوب وحدد الفترة الزمنية، " +
				"ثم اضغط تصدير لحفظه بصيغة ملف خارجي.",
			Keywords: []string{"تصدير", "تقرير", "حفظ", "طباعة"},
		},
	}
}

// Source serves a fixed set of help topics.
type Source struct {
	id      string
	topics  []Topic
	enabled bool
}

// New creates a help source. A nil topic list falls back to
// BuiltinTopics.
func New(id string, topics []Topic) *Source {
	if topics == nil {
		topics = BuiltinTopics()
	}
	return &Source{id: id, topics: topics, enabled: true}
}

// ID returns the source identifier.
func (s *Source) ID() string { return s.id }

// Type returns the help source type tag.
func (s *Source) Type() domain.SourceType { return domain.SourceTypeHelp }

// Enabled reports whether the source should be indexed.
func (s *Source) Enabled() bool { return s.enabled }

// SetEnabled toggles the source without unregistering it.
func (s *Source) SetEnabled(enabled bool) { s.enabled = enabled }

// Extract produces one item per help topic.
func (s *Source) Extract(ctx context.Context) ([]domain.KnowledgeItem, error) {
	items := make([]domain.KnowledgeItem, 0, len(s.topics))
	for _, topic := range s.topics {
		items = append(items, domain.KnowledgeItem{
			ID:         "help:" + topic.ID,
			SourceType: domain.SourceTypeHelp,
			Title:      topic.Title,
			Content:    topic.Body,
			Keywords:   topic.Keywords,
			IndexedAt:  now(),
		})
	}
	return items, nil
}
