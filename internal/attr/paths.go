package attr

// Attribute definition paths.
const (
	PathReloadSpeed     = "/Game/GameData/Attributes/Weapon/Att_Weapon_ReloadSpeedScale"
	PathFireRate        = "/Game/GameData/Attributes/Weapon/Att_Weapon_FireRateScale"
	PathSplashDamage    = "/Game/GameData/Attributes/Weapon/Att_Weapon_SplashDamageScale"
	PathSplashRadius    = "/Game/GameData/Attributes/Weapon/Att_Weapon_SplashRadiusScale"
	PathProjectiles     = "/Game/GameData/Attributes/Weapon/Att_Weapon_ProjectilesPerShot"
	PathActionSkillCDR  = "/Game/GameData/Attributes/ActionSkill/Att_ActionSkill_CooldownRate"
	PathDamageReduction = "/Game/GameData/Attributes/Character/Att_Character_DamageReduction"
)

// MovementSpeedPaths lists the movement-speed attribute names seen across game builds.
// Whichever resolve get scaled.
var MovementSpeedPaths = []string{
	"/Game/GameData/Attributes/Movement/Att_CharacterMovementSpeed",
	"/Game/GameData/Attributes/Movement/Att_Character_Movement_Speed",
	"/Game/GameData/Attributes/Player/Att_CharacterMovementSpeed",
}

// Raw numeric fields on live entities.
const (
	FieldMaxWalkSpeed   = "CharacterMovement.MaxWalkSpeed"
	FieldMaxSprintSpeed = "CharacterMovement.MaxSprintSpeed"
	FieldTimeDilation   = "CustomTimeDilation"
	FieldFOV            = "PlayerCameraManager.FOV"
	FieldSkillPoints    = "SkillPoints"
)
