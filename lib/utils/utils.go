package utils

import "math/rand"

/**
 * @Author: wanglei
 * @File: utils
 * @Version: 1.0.0
 * @Description: 工具包
 * @Date: 2023/07/05 17:20
 */

// ToCmdLine 将字符串参数转换为命令行
func ToCmdLine(cmd ...string) [][]byte {
	args := make([][]byte, len(cmd))
	for i, s := range cmd {
		args[i] = []byte(s)
	}
	return args
}

// ToStrings 将命令行参数转换为字符串
func ToStrings(args [][]byte) []string {
	strs := make([]string, len(args))
	for i, arg := range args {
		strs[i] = string(arg)
	}
	return strs
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// RandString 生成n个字符的随机字符串，测试中用作key
func RandString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
