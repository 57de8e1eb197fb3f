package core

// Version 由 xtask version 维护，不要手动修改格式
const Version = "0-1-0-00078"
