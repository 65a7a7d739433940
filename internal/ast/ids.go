package ast

type (
	// узлы верхнего уровня
	StmtID  uint32
	ExprID  uint32
	PatID   uint32
	TypeID  uint32
	IdentID uint32
	// подсущности
	FuncID    uint32
	ParamID   uint32
	DeclID    uint32
	ClassID   uint32
	MemberID  uint32
	PropID    uint32
	PayloadID uint32
)

const (
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoPatID     PatID     = 0
	NoTypeID    TypeID    = 0
	NoIdentID   IdentID   = 0
	NoFuncID    FuncID    = 0
	NoParamID   ParamID   = 0
	NoDeclID    DeclID    = 0
	NoClassID   ClassID   = 0
	NoMemberID  MemberID  = 0
	NoPropID    PropID    = 0
	NoPayloadID PayloadID = 0
)

func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PatID) IsValid() bool     { return id != NoPatID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id IdentID) IsValid() bool   { return id != NoIdentID }
func (id FuncID) IsValid() bool    { return id != NoFuncID }
func (id ParamID) IsValid() bool   { return id != NoParamID }
func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id ClassID) IsValid() bool   { return id != NoClassID }
func (id MemberID) IsValid() bool  { return id != NoMemberID }
func (id PropID) IsValid() bool    { return id != NoPropID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
