package model

// User 会话用户实体
// 由应用 Store 独占持有，所有变更必须经过 Store 的动作方法
type User struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Avatar    string           `json:"avatar"`
	Email     string           `json:"email"`
	Bio       string           `json:"bio"`
	Role      UserRole         `json:"role"`
	AIUsage   int              `json:"ai_usage"`   // AI 助手累计使用次数（服务端计数为准）
	Points    int              `json:"points"`     // 签到积分
	Followers int              `json:"followers"`  // 粉丝数
	Following int              `json:"following"`  // 关注数
	Level     CultivationLevel `json:"level"`      // 修为等级（功能解锁门槛）
	VIPType   VIPType          `json:"vip_type,omitempty"`
}

// UserRole 用户角色
type UserRole string

const (
	RoleUser  UserRole = "user"  // 普通用户
	RoleVIP   UserRole = "vip"   // VIP用户
	RoleAdmin UserRole = "admin" // 管理员
)

// IsValid 检查角色是否有效
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleVIP || r == RoleAdmin
}

// String 返回角色字符串
func (r UserRole) String() string {
	return string(r)
}

// CultivationLevel 修为等级（有序枚举，数值越大权限越高）
type CultivationLevel int

const (
	LevelQiRefining   CultivationLevel = iota + 1 // 炼气
	LevelFoundation                               // 筑基
	LevelGoldenCore                               // 金丹
	LevelNascentSoul                              // 元婴
	LevelSpiritTrans                              // 化神
)

var levelNames = map[CultivationLevel]string{
	LevelQiRefining:  "炼气",
	LevelFoundation:  "筑基",
	LevelGoldenCore:  "金丹",
	LevelNascentSoul: "元婴",
	LevelSpiritTrans: "化神",
}

// String 返回等级名称
func (l CultivationLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "未知"
}

// AtLeast 判断等级是否达到门槛（如评论区最低筑基）
func (l CultivationLevel) AtLeast(min CultivationLevel) bool {
	return l >= min
}

// VIPType VIP订阅类型
type VIPType string

const (
	VIPNone    VIPType = ""        // 非VIP
	VIPMonthly VIPType = "monthly" // 月度
	VIPYearly  VIPType = "yearly"  // 年度
)

// UserPatch 用户资料局部更新
// 指针字段为 nil 表示不更新对应字段
type UserPatch struct {
	Name      *string `json:"name,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Email     *string `json:"email,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Followers *int    `json:"followers,omitempty"`
	Following *int    `json:"following,omitempty"`
}

// Apply 将补丁浅合并到用户对象上，未提供的字段保持不变
func (p UserPatch) Apply(u *User) {
	if u == nil {
		return
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Followers != nil {
		u.Followers = *p.Followers
	}
	if p.Following != nil {
		u.Following = *p.Following
	}
}
