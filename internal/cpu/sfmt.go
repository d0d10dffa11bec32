package cpu

import "fmt"

// Sfmt selects the field layout of an instruction: which extractor runs and
// which Args variant it produces.
type Sfmt uint8

const (
	SfmtEmpty Sfmt = iota
	SfmtMoveBR
	SfmtMoveDR
	SfmtMoveq
	SfmtMovsBR
	SfmtMovecbr
	SfmtMovecwr
	SfmtMovecdr
	SfmtMovscbr
	SfmtMovscwr
	SfmtMovucbr
	SfmtMovucwr
	SfmtAddq
	SfmtCmpRBR
	SfmtCmpMBM
	SfmtCmpMWM
	SfmtCmpMDM
	SfmtCmpcbr
	SfmtCmpcwr
	SfmtCmpcdr
	SfmtCmpq
	SfmtCmpucbr
	SfmtCmpucwr
	SfmtMoveMBM
	SfmtMoveMWM
	SfmtMoveMDM
	SfmtMovsMBM
	SfmtMovsMWM
	SfmtMoveRSprv32
	SfmtMoveSprRv32
	SfmtMoveMSprv32
	SfmtMoveCSprv32P2
	SfmtMoveSprMv32
	SfmtMoveSsR
	SfmtMoveRSs
	SfmtMovemRMV32
	SfmtMovemMRV32
	SfmtAddBR
	SfmtAddDR
	SfmtAddMBM
	SfmtAddMWM
	SfmtAddMDM
	SfmtAddcbr
	SfmtAddcwr
	SfmtAddcdr
	SfmtAddsMBM
	SfmtAddsMWM
	SfmtAddscbr
	SfmtAddscwr
	SfmtAddcM
	SfmtLapcD
	SfmtLapcq
	SfmtAddiBR
	SfmtNegBR
	SfmtNegDR
	SfmtTestMBM
	SfmtTestMWM
	SfmtTestMDM
	SfmtMoveRMBM
	SfmtMoveRMWM
	SfmtMoveRMDM
	SfmtMulsB
	SfmtMcp
	SfmtDstep
	SfmtAndBR
	SfmtAndDR
	SfmtAndMBM
	SfmtAndMWM
	SfmtAndMDM
	SfmtAndcbr
	SfmtAndcwr
	SfmtAndcdr
	SfmtAndq
	SfmtSwap
	SfmtAsrq
	SfmtLsrrBR
	SfmtLsrrDR
	SfmtBtst
	SfmtBtstq
	SfmtSetf
	SfmtRfe
	SfmtSfe
	SfmtRfg
	SfmtRfn
	SfmtHalt
	SfmtBccB
	SfmtBaB
	SfmtBccW
	SfmtBaW
	SfmtJasR
	SfmtJasC
	SfmtJumpP
	SfmtBasC
	SfmtJascR
	SfmtBreak
	SfmtBoundCb
	SfmtBoundCw
	SfmtBoundCd
	SfmtScc
	SfmtAddoq
	SfmtAddoMBM
	SfmtAddoMWM
	SfmtAddoMDM
	SfmtAddoCb
	SfmtAddoCw
	SfmtAddoCd
	SfmtAddiAcrBR
	SfmtFidxi

	NumSfmts int = iota
)

var sfmtNames = [...]string{
	SfmtEmpty:         "sfmt_empty",
	SfmtMoveBR:        "sfmt_move_b_r",
	SfmtMoveDR:        "sfmt_move_d_r",
	SfmtMoveq:         "sfmt_moveq",
	SfmtMovsBR:        "sfmt_movs_b_r",
	SfmtMovecbr:       "sfmt_movecbr",
	SfmtMovecwr:       "sfmt_movecwr",
	SfmtMovecdr:       "sfmt_movecdr",
	SfmtMovscbr:       "sfmt_movscbr",
	SfmtMovscwr:       "sfmt_movscwr",
	SfmtMovucbr:       "sfmt_movucbr",
	SfmtMovucwr:       "sfmt_movucwr",
	SfmtAddq:          "sfmt_addq",
	SfmtCmpRBR:        "sfmt_cmp_r_b_r",
	SfmtCmpMBM:        "sfmt_cmp_m_b_m",
	SfmtCmpMWM:        "sfmt_cmp_m_w_m",
	SfmtCmpMDM:        "sfmt_cmp_m_d_m",
	SfmtCmpcbr:        "sfmt_cmpcbr",
	SfmtCmpcwr:        "sfmt_cmpcwr",
	SfmtCmpcdr:        "sfmt_cmpcdr",
	SfmtCmpq:          "sfmt_cmpq",
	SfmtCmpucbr:       "sfmt_cmpucbr",
	SfmtCmpucwr:       "sfmt_cmpucwr",
	SfmtMoveMBM:       "sfmt_move_m_b_m",
	SfmtMoveMWM:       "sfmt_move_m_w_m",
	SfmtMoveMDM:       "sfmt_move_m_d_m",
	SfmtMovsMBM:       "sfmt_movs_m_b_m",
	SfmtMovsMWM:       "sfmt_movs_m_w_m",
	SfmtMoveRSprv32:   "sfmt_move_r_sprv32",
	SfmtMoveSprRv32:   "sfmt_move_spr_rv32",
	SfmtMoveMSprv32:   "sfmt_move_m_sprv32",
	SfmtMoveCSprv32P2: "sfmt_move_c_sprv32_p2",
	SfmtMoveSprMv32:   "sfmt_move_spr_mv32",
	SfmtMoveSsR:       "sfmt_move_ss_r",
	SfmtMoveRSs:       "sfmt_move_r_ss",
	SfmtMovemRMV32:    "sfmt_movem_r_m_v32",
	SfmtMovemMRV32:    "sfmt_movem_m_r_v32",
	SfmtAddBR:         "sfmt_add_b_r",
	SfmtAddDR:         "sfmt_add_d_r",
	SfmtAddMBM:        "sfmt_add_m_b_m",
	SfmtAddMWM:        "sfmt_add_m_w_m",
	SfmtAddMDM:        "sfmt_add_m_d_m",
	SfmtAddcbr:        "sfmt_addcbr",
	SfmtAddcwr:        "sfmt_addcwr",
	SfmtAddcdr:        "sfmt_addcdr",
	SfmtAddsMBM:       "sfmt_adds_m_b_m",
	SfmtAddsMWM:       "sfmt_adds_m_w_m",
	SfmtAddscbr:       "sfmt_addscbr",
	SfmtAddscwr:       "sfmt_addscwr",
	SfmtAddcM:         "sfmt_addc_m",
	SfmtLapcD:         "sfmt_lapc_d",
	SfmtLapcq:         "sfmt_lapcq",
	SfmtAddiBR:        "sfmt_addi_b_r",
	SfmtNegBR:         "sfmt_neg_b_r",
	SfmtNegDR:         "sfmt_neg_d_r",
	SfmtTestMBM:       "sfmt_test_m_b_m",
	SfmtTestMWM:       "sfmt_test_m_w_m",
	SfmtTestMDM:       "sfmt_test_m_d_m",
	SfmtMoveRMBM:      "sfmt_move_r_m_b_m",
	SfmtMoveRMWM:      "sfmt_move_r_m_w_m",
	SfmtMoveRMDM:      "sfmt_move_r_m_d_m",
	SfmtMulsB:         "sfmt_muls_b",
	SfmtMcp:           "sfmt_mcp",
	SfmtDstep:         "sfmt_dstep",
	SfmtAndBR:         "sfmt_and_b_r",
	SfmtAndDR:         "sfmt_and_d_r",
	SfmtAndMBM:        "sfmt_and_m_b_m",
	SfmtAndMWM:        "sfmt_and_m_w_m",
	SfmtAndMDM:        "sfmt_and_m_d_m",
	SfmtAndcbr:        "sfmt_andcbr",
	SfmtAndcwr:        "sfmt_andcwr",
	SfmtAndcdr:        "sfmt_andcdr",
	SfmtAndq:          "sfmt_andq",
	SfmtSwap:          "sfmt_swap",
	SfmtAsrq:          "sfmt_asrq",
	SfmtLsrrBR:        "sfmt_lsrr_b_r",
	SfmtLsrrDR:        "sfmt_lsrr_d_r",
	SfmtBtst:          "sfmt_btst",
	SfmtBtstq:         "sfmt_btstq",
	SfmtSetf:          "sfmt_setf",
	SfmtRfe:           "sfmt_rfe",
	SfmtSfe:           "sfmt_sfe",
	SfmtRfg:           "sfmt_rfg",
	SfmtRfn:           "sfmt_rfn",
	SfmtHalt:          "sfmt_halt",
	SfmtBccB:          "sfmt_bcc_b",
	SfmtBaB:           "sfmt_ba_b",
	SfmtBccW:          "sfmt_bcc_w",
	SfmtBaW:           "sfmt_ba_w",
	SfmtJasR:          "sfmt_jas_r",
	SfmtJasC:          "sfmt_jas_c",
	SfmtJumpP:         "sfmt_jump_p",
	SfmtBasC:          "sfmt_bas_c",
	SfmtJascR:         "sfmt_jasc_r",
	SfmtBreak:         "sfmt_break",
	SfmtBoundCb:       "sfmt_bound_cb",
	SfmtBoundCw:       "sfmt_bound_cw",
	SfmtBoundCd:       "sfmt_bound_cd",
	SfmtScc:           "sfmt_scc",
	SfmtAddoq:         "sfmt_addoq",
	SfmtAddoMBM:       "sfmt_addo_m_b_m",
	SfmtAddoMWM:       "sfmt_addo_m_w_m",
	SfmtAddoMDM:       "sfmt_addo_m_d_m",
	SfmtAddoCb:        "sfmt_addo_cb",
	SfmtAddoCw:        "sfmt_addo_cw",
	SfmtAddoCd:        "sfmt_addo_cd",
	SfmtAddiAcrBR:     "sfmt_addi_acr_b_r",
	SfmtFidxi:         "sfmt_fidxi",
}

func (s Sfmt) String() string {
	if int(s) < len(sfmtNames) {
		return sfmtNames[s]
	}
	return fmt.Sprintf("sfmt(%d)", uint8(s))
}
