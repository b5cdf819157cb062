// internal/event/types.go
package event

const (
	PercentChanged      EventType = "PercentChanged"      // Отображаемый процент изменился
	TransitionStarted   EventType = "TransitionStarted"   // Начат переход к новому проценту
	TransitionCancelled EventType = "TransitionCancelled" // Переход заменён новым
	TransitionFinished  EventType = "TransitionFinished"  // Переход дошёл до цели
	ViewTapped          EventType = "ViewTapped"
)

// TransitionData — данные событий перехода
type TransitionData struct {
	From, To   float32
	Generation uint64
}
