// Package model 定义排课引擎的核心标识符类型
package model

// Event 课程事件句柄，解析阶段分配的稠密整数 ID
type Event int

// Room 教室句柄
type Room int

// RoomKind 教室类型句柄（如"普通教室"、"实验室"）
type RoomKind int

// EventKind 事件类型句柄（课程名称归类）
type EventKind int

// Person 人员句柄（教师/学生等出席者）
type Person int

// Slot 时间槽句柄，范围 [0, NumSlots)
type Slot int

// Invalid 是未设置句柄的哨兵值，解析产出的句柄永不等于它
const Invalid = -1
