package services

var GenerateBindCode = generateBindCode
