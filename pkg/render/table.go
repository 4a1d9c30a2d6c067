// Package render 把一份 TIMEMAP 渲染成人类可读的文本表格，对应原实现
// utils.rs::make_table 的 comfy_table 用法，这里改用标准库 text/tabwriter
// ——整个语料库里没有出现过任何表格渲染第三方库，照搬 comfy_table 这类
// 依赖无处可落地，tabwriter 是唯一可归属的选择。
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dayName(day int) string {
	if day < len(weekdayNames) {
		return weekdayNames[day]
	}
	return fmt.Sprintf("Day %d", day+1)
}

// Table 把 s 渲染为一张按天分列、按时间槽分行的表格写入 w；onlyDay 非负时
// 只渲染那一天
func Table(w io.Writer, s solution.Solution, p *project.Project, onlyDay int) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	defer tw.Flush()

	days := p.Config.IterDays()
	if onlyDay >= 0 {
		days = []int{onlyDay}
	}

	for i, d := range days {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, dayName(d))
	}
	fmt.Fprintln(tw)

	for offset := 0; offset < p.Config.SlotsPerDay; offset++ {
		for i, d := range days {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			slot := d*p.Config.SlotsPerDay + offset
			fmt.Fprint(tw, cellFor(s, p, slot))
		}
		fmt.Fprintln(tw)
	}
}

func cellFor(s solution.Solution, p *project.Project, slot int) string {
	var cell string
	for _, pl := range s.EventsInSlot(slot) {
		cell += fmt.Sprintf("%s (%d) %s; ", p.Events.KindName(pl.Event), pl.Event, p.Rooms.RoomName(pl.Room))
	}
	if cell == "" {
		return "-"
	}
	return cell
}
